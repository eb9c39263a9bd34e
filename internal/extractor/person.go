package extractor

import (
	"regexp"
	"strings"
)

// La persona se busca sobre rawText: la capitalización distingue un nombre
// propio ("Juan") de una palabra común a inicio de frase.
var (
	name = `([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`

	rePersonAfterVerb = regexp.MustCompile(`(?:[Pp]rest\w*|[Ff]i[aeo]\w*|[Cc]obr\w*|[Pp]ag\w*|[Dd]evolv\w*|[Dd]evuelv\w*)\s+(?:a\s+|para\s+)?` + name)
	rePersonTrailing  = regexp.MustCompile(`\b(?:a|para)\s+` + name + `\s*$`)
	rePersonOfPayment = regexp.MustCompile(`(?:[Pp]ago|[Dd]evol\w*)\s+de\s+` + name)

	// Palabras funcionales que aparecen capitalizadas al borde de la frase
	personStopWords = map[string]struct{}{
		"el": {}, "la": {}, "los": {}, "las": {},
		"un": {}, "una": {}, "unos": {}, "unas": {},
		"que": {}, "de": {}, "del": {}, "al": {},
		"se": {}, "le": {}, "mi": {}, "su": {},
	}
)

// Person extrae el nombre de la persona de una orden de préstamo, cobro o
// pago: la primera palabra capitalizada (una o dos) después de un verbo de
// prestar/cobrar/pagar, tras un "a|para" final, o en "pago de Fulano".
// Devuelve cadena vacía si no hay nombre aceptable.
func Person(rawText string) string {
	for _, pattern := range []*regexp.Regexp{rePersonAfterVerb, rePersonTrailing, rePersonOfPayment} {
		if m := pattern.FindStringSubmatch(rawText); m != nil {
			if accepted := filterStopWords(m[1]); accepted != "" {
				return accepted
			}
		}
	}
	return ""
}

// filterStopWords descarta palabras funcionales capitalizadas; si la
// segunda palabra es funcional se conserva solo la primera.
func filterStopWords(candidate string) string {
	words := strings.Fields(candidate)
	if len(words) == 0 {
		return ""
	}
	if _, stop := personStopWords[strings.ToLower(words[0])]; stop {
		return ""
	}
	if len(words) == 2 {
		if _, stop := personStopWords[strings.ToLower(words[1])]; stop {
			return words[0]
		}
	}
	return strings.Join(words, " ")
}
