package extractor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Frases de acción que preceden a los nombres nuevos
	reNamesLead    = regexp.MustCompile(`(?i)^.*?\b(?:categorias?|proveedor(?:es)?)\b[\s:]*`)
	reNamesVerb    = regexp.MustCompile(`(?i)^\s*(?:crea(?:r)?|elimina(?:r)?|borra(?:r)?|agrega(?:r)?|anade|anadir|registra(?:r)?|quita(?:r)?)\b\s*`)
	reNamesLlame   = regexp.MustCompile(`(?i)\bque\s+se\s+(?:llamen?|digan?)\b`)
	reNamesLlamado = regexp.MustCompile(`(?i)\bllamad[oa]s?\b`)
	reNamesOtro    = regexp.MustCompile(`(?i)\botro\s+que\s+diga\b`)
	reNamesAnd     = regexp.MustCompile(`(?i)\by\b`)
	reLeadingNum   = regexp.MustCompile(`^\d+\s*`)

	reProductLead = regexp.MustCompile(`(?i)\b(?:crea(?:r)?|nuevo|agrega(?:r)?|anade|anadir|registra(?:r)?)\s+(?:un\s+)?producto\b[\s:]*(?:que\s+se\s+llame\s+|llamado\s+)?(.+)$`)
	reCategoryRef = regexp.MustCompile(`\b(?:en\s+(?:la\s+)?categoria|de\s+(?:la\s+)?categoria|categoria)\s+(?:de\s+)?([a-z0-9][a-z0-9 ]*)`)

	// Cláusulas modificadoras que cierran un nombre libre
	reTrailingClause = regexp.MustCompile(`(?i)\s+(?:en\s+(?:la\s+)?categoria\b|categoria\b|precio\b|venta\b|compra\b|costo\b|con\s+stock\b|stock\b|a\s+\d).*$`)

	nameConnectors = map[string]struct{}{
		"y": {}, "e": {}, "o": {}, "u": {},
		"el": {}, "la": {}, "los": {}, "las": {},
		"un": {}, "una": {},
	}
)

// Names extrae una lista de nombres libres para crear categorías o
// proveedores en lote: quita la frase de acción inicial, separa por comas,
// por la conjunción "y", por numerales al inicio y por "otro que diga",
// y descarta fragmentos vacíos o conectores sueltos. El orden se conserva.
func Names(rawText string) []string {
	s := rawText
	if loc := reNamesLead.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	} else {
		s = reNamesVerb.ReplaceAllString(s, "")
	}
	s = reNamesLlame.ReplaceAllString(s, "")
	s = reNamesLlamado.ReplaceAllString(s, "")
	s = reNamesOtro.ReplaceAllString(s, ",")
	s = reNamesAnd.ReplaceAllString(s, ",")

	var names []string
	for _, fragment := range strings.Split(s, ",") {
		fragment = strings.TrimSpace(fragment)
		fragment = reLeadingNum.ReplaceAllString(fragment, "")
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		if _, connector := nameConnectors[strings.ToLower(fragment)]; connector {
			continue
		}
		names = append(names, titleCase(fragment))
	}
	return names
}

// ProductName extrae el nombre de un producto nuevo: lo que sigue a la
// frase de creación, cortando la primera cláusula modificadora
// ("en categoría", "precio", "con stock", "a 45", ...).
func ProductName(rawText string) string {
	m := reProductLead.FindStringSubmatch(rawText)
	if m == nil {
		return ""
	}
	name := reTrailingClause.ReplaceAllString(m[1], "")
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return titleCase(name)
}

// CategoryName extrae una referencia a categoría dentro del texto
// normalizado ("en la categoria vinos", "categoria cervezas"), pendiente
// de resolver contra el catálogo.
func CategoryName(normalizedText string) string {
	m := reCategoryRef.FindStringSubmatch(normalizedText)
	if m == nil {
		return ""
	}
	name := reTrailingClause.ReplaceAllString(m[1], "")
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return titleCase(name)
}

// titleCase capitaliza cada palabra con las reglas del español.
func titleCase(s string) string {
	return cases.Title(language.Spanish).String(strings.ToLower(s))
}
