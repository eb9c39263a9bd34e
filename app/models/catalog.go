package models

// Product es un producto del catálogo de la licorería. Los alias son las
// formas en que la gente lo pide de viva voz ("Pacena", "Paceñita") y
// entran al corpus del matcher difuso junto con el nombre.
type Product struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases"`
	Stock      int      `json:"stock" yaml:"stock"`
	MinStock   int      `json:"min_stock" yaml:"min_stock"`
	BuyPrice   float64  `json:"buy_price" yaml:"buy_price"`
	SellPrice  float64  `json:"sell_price" yaml:"sell_price"`
	CategoryID string   `json:"category_id,omitempty" yaml:"category_id"`
}

// Category agrupa productos
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Supplier es un proveedor de la tienda
type Supplier struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone,omitempty" yaml:"phone"`
	Address string `json:"address,omitempty" yaml:"address"`
}

// CatalogSnapshot es la copia puntual del catálogo que recibe cada parseo.
// El intérprete solo la lee; mantenerla fresca es responsabilidad de quien
// la pasa. Version cambia cuando cambia el contenido y entra al
// fingerprint del cache de resultados.
type CatalogSnapshot struct {
	Products   []Product  `json:"products" yaml:"products"`
	Categories []Category `json:"categories" yaml:"categories"`
	Suppliers  []Supplier `json:"suppliers" yaml:"suppliers"`
	Version    string     `json:"version,omitempty" yaml:"-"`
}
