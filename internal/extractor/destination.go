package extractor

import "strings"

// destination asocia una palabra clave con la ruta de pantalla de la app.
// Es un slice y no un map: el orden de búsqueda es fijo y determinista.
var destinations = []struct {
	keyword string
	route   string
}{
	{"producto", "/productos"},
	{"venta", "/ventas"},
	{"llegada", "/llegadas"},
	{"prestamo", "/prestamos"},
	{"proveedor", "/proveedores"},
	{"categoria", "/categorias"},
	{"reporte", "/reportes"},
	{"inicio", "/"},
	{"dashboard", "/"},
	{"panel", "/"},
}

// Destination devuelve la ruta de la primera palabra clave de navegación
// presente en el texto normalizado, o cadena vacía si no hay ninguna.
func Destination(normalizedText string) string {
	for _, d := range destinations {
		if strings.Contains(normalizedText, d.keyword) {
			return d.route
		}
	}
	return ""
}
