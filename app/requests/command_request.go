package requests

// ParseCommandRequest request para interpretar un comando
type ParseCommandRequest struct {
	Text    string       `json:"text" binding:"required"` // Comando en lenguaje natural
	Options ParseOptions `json:"options,omitempty"`       // Opciones de interpretación
}

// ParseOptions opciones de interpretación
type ParseOptions struct {
	UseCache bool `json:"use_cache,omitempty"` // Consultar el cache de comandos
	Execute  bool `json:"execute,omitempty"`   // Ejecutar el comando además de interpretarlo
}

// BatchParseRequest request para interpretar varios comandos
type BatchParseRequest struct {
	Texts   []string     `json:"texts" binding:"required,min=1,max=500"` // Comandos (máximo 500)
	Options ParseOptions `json:"options,omitempty"`                      // Opciones de interpretación
}
