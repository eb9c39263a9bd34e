package normalizer

import "regexp"

// numberWord asocia una palabra numérica en español con su forma en dígitos.
// Los patrones son disjuntos entre sí (límite de palabra), por lo que el
// orden de reemplazo no altera el resultado; las formas compuestas van
// primero para que "media docena" no quede partida.
type numberWord struct {
	re    *regexp.Regexp
	digit string
}

var numberWords = buildNumberWords()

func buildNumberWords() []numberWord {
	table := []struct{ word, digit string }{
		// compuestas primero
		{`media docena`, "6"},
		{`una docena`, "12"},
		{`dieciseis`, "16"},
		{`diecisiete`, "17"},
		{`dieciocho`, "18"},
		{`diecinueve`, "19"},
		{`veinte`, "20"},
		{`quince`, "15"},
		{`catorce`, "14"},
		{`trece`, "13"},
		{`docena`, "12"},
		{`doce`, "12"},
		{`once`, "11"},
		{`diez`, "10"},
		{`nueve`, "9"},
		{`ocho`, "8"},
		{`siete`, "7"},
		{`seis`, "6"},
		{`cinco`, "5"},
		{`cuatro`, "4"},
		{`tres`, "3"},
		{`dos`, "2"},
		{`uno`, "1"},
		{`una`, "1"},
		{`un`, "1"},
	}

	words := make([]numberWord, 0, len(table))
	for _, t := range table {
		words = append(words, numberWord{
			re:    regexp.MustCompile(`(?i)\b` + t.word + `\b`),
			digit: t.digit,
		})
	}
	return words
}

// ExpandNumberWords reemplaza palabras numéricas en español por dígitos:
// "vende dos pacenas" → "vende 2 pacenas". Se aplica sobre texto ya
// normalizado (sin tildes); reemplaza todas las ocurrencias.
// "media" sola no se expande, solo "media docena" (ambigüedad asumida).
func ExpandNumberWords(text string) string {
	s := text
	for _, nw := range numberWords {
		s = nw.re.ReplaceAllString(s, nw.digit)
	}
	return s
}
