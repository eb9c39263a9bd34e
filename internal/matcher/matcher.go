// Package matcher resuelve menciones libres de productos, categorías y
// proveedores contra el catálogo en memoria, con matching aproximado.
// Las frases largas se prueban primero: "cerveza pilsen 620ml" desambigua
// antes de que un token genérico como "cerveza" empate con media lista.
package matcher

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/internal/normalizer"
)

// Thresholds son distancias máximas de aceptación (menor = más parecido).
// Están calibradas para Score; un algoritmo distinto exige recalibrar,
// no copiar los números.
type Thresholds struct {
	ProductPhrase float64 // ventanas de 2+ palabras contra productos
	ProductToken  float64 // token suelto (≥3 letras), más estricto
	Term          float64 // categorías y proveedores en cualquier largo
}

// DefaultThresholds puede ajustarse una sola vez al arrancar el proceso.
var DefaultThresholds = Thresholds{
	ProductPhrase: 0.35,
	ProductToken:  0.25,
	Term:          0.30,
}

// entry es un candidato indexado por sus claves ya normalizadas
type entry struct {
	keys  []string
	index int
}

// Score es la distancia entre una consulta y una clave del catálogo:
// 1 menos la mejor similitud entre Jaro-Winkler y Levenshtein normalizado.
// Vale 0 para cadenas iguales y crece hacia 1.
func Score(query, key string) float64 {
	if query == "" || key == "" {
		return 1
	}
	jaro := smetrics.JaroWinkler(query, key, 0.7, 4)

	dist := levenshtein.ComputeDistance(query, key)
	maxLen := math.Max(float64(len(query)), float64(len(key)))
	lev := 1 - float64(dist)/maxLen

	return 1 - math.Max(jaro, lev)
}

// MatchProduct busca en el texto la mejor mención aproximada de un
// producto: ventanas deslizantes de 6 a 2 palabras contra nombre y alias,
// y como último recurso tokens sueltos de 3+ letras con umbral estricto.
// Devuelve nil si nada queda bajo el umbral.
func MatchProduct(rawText string, products []models.Product) *models.Product {
	entries := make([]entry, 0, len(products))
	for i, p := range products {
		keys := make([]string, 0, 1+len(p.Aliases))
		keys = append(keys, normalizer.Normalize(p.Name))
		for _, alias := range p.Aliases {
			keys = append(keys, normalizer.Normalize(alias))
		}
		entries = append(entries, entry{keys: keys, index: i})
	}

	tokens := strings.Fields(normalizer.Normalize(rawText))

	if idx := searchWindows(tokens, entries, 6, 2, DefaultThresholds.ProductPhrase); idx >= 0 {
		return &products[idx]
	}
	// Reintento con tokens sueltos: solo palabras de 3+ letras para no
	// empatar conectores, y umbral más duro contra falsos positivos
	for _, token := range tokens {
		if len(token) < 3 {
			continue
		}
		if idx := bestEntry(token, entries, DefaultThresholds.ProductToken); idx >= 0 {
			return &products[idx]
		}
	}
	return nil
}

// MatchCategory resuelve una mención de categoría (ventanas de 4 a 1)
func MatchCategory(rawText string, categories []models.Category) *models.Category {
	entries := make([]entry, 0, len(categories))
	for i, c := range categories {
		entries = append(entries, entry{keys: []string{normalizer.Normalize(c.Name)}, index: i})
	}
	tokens := strings.Fields(normalizer.Normalize(rawText))
	if idx := searchWindows(tokens, entries, 4, 1, DefaultThresholds.Term); idx >= 0 {
		return &categories[idx]
	}
	return nil
}

// MatchSupplier resuelve una mención de proveedor (ventanas de 4 a 1)
func MatchSupplier(rawText string, suppliers []models.Supplier) *models.Supplier {
	entries := make([]entry, 0, len(suppliers))
	for i, s := range suppliers {
		entries = append(entries, entry{keys: []string{normalizer.Normalize(s.Name)}, index: i})
	}
	tokens := strings.Fields(normalizer.Normalize(rawText))
	if idx := searchWindows(tokens, entries, 4, 1, DefaultThresholds.Term); idx >= 0 {
		return &suppliers[idx]
	}
	return nil
}

// searchWindows recorre ventanas de largo decreciente, de izquierda a
// derecha, y acepta la primera cuyo mejor candidato queda bajo el umbral.
// El barrido es determinista: mismo texto y mismo catálogo, mismo índice.
func searchWindows(tokens []string, entries []entry, maxSize, minSize int, threshold float64) int {
	if len(tokens) == 0 || len(entries) == 0 {
		return -1
	}
	if maxSize > len(tokens) {
		maxSize = len(tokens)
	}
	for size := maxSize; size >= minSize; size-- {
		for start := 0; start+size <= len(tokens); start++ {
			phrase := strings.Join(tokens[start:start+size], " ")
			if idx := bestEntry(phrase, entries, threshold); idx >= 0 {
				return idx
			}
		}
	}
	return -1
}

// bestEntry devuelve el índice del candidato con menor distancia a la
// frase, si queda estrictamente bajo el umbral; los empates los gana el
// primero de la lista.
func bestEntry(phrase string, entries []entry, threshold float64) int {
	best := -1
	bestScore := threshold
	for _, e := range entries {
		for _, key := range e.keys {
			if s := Score(phrase, key); s < bestScore {
				best = e.index
				bestScore = s
			}
		}
	}
	return best
}
