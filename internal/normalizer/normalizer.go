package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Signos de puntuación que el dictado suele arrastrar
	rePunct  = regexp.MustCompile(`[¿¡!?,;:.]`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// Normalize pasa el texto a minúsculas, quita tildes y reemplaza la
// puntuación por espacios. Es idempotente: Normalize(Normalize(x)) == Normalize(x).
// La eñe se vuelve "n" (simplificación asumida: "año" → "ano").
func Normalize(text string) string {
	// Unidecode primero: algunos caracteres ("…", comillas tipográficas)
	// se expanden a puntuación ASCII que también hay que quitar
	s := unidecode.Unidecode(text)
	s = rePunct.ReplaceAllString(s, " ")
	s = strings.ToLower(s)
	return reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StripDiacritics quita tildes conservando mayúsculas y puntuación.
// Sirve para los extractores que dependen de la capitalización (nombres
// de personas, nombres nuevos de categorías/productos).
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// isMn detecta marcas diacríticas combinantes
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
