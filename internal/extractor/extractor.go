// Package extractor reúne los extractores de entidades de una orden de voz.
// Cada extractor es una función pura sobre texto y devuelve nil (o cadena
// vacía) cuando la entidad no aparece; ninguno lanza pánico.
//
// Convención de parámetros: normalizedText viene de normalizer.Normalize
// (más ExpandNumberWords para los numéricos); rawText conserva las
// mayúsculas del dictado original (con tildes ya removidas) porque los
// nombres propios dependen de la capitalización. Mezclar ambos rompe la
// extracción de personas y de nombres nuevos.
package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNumber  = regexp.MustCompile(`\d+`)
	reDecimal = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	reQuantityUnit = regexp.MustCompile(`\b(\d+)\s*(?:unidad(?:es)?|botella(?:s)?|caja(?:s)?|lata(?:s)?|pieza(?:s)?|kilo(?:s)?|litro(?:s)?|paquete(?:s)?|packs?|six|cajon(?:es)?)\b`)

	rePriceLead     = regexp.MustCompile(`\b(?:a|por|precio)\s+(\d+(?:[.,]\d+)?)(?:\s*(?:bs|bolivianos|pesos|bob))?\b`)
	rePriceCurrency = regexp.MustCompile(`\b(\d+(?:[.,]\d+)?)\s*(?:bs|bolivianos|pesos|bob)\b`)

	reSellExplicit  = regexp.MustCompile(`\bventa\s+(?:a\s+|de\s+)?(\d+(?:[.,]\d+)?)\b`)
	reSellGeneric   = regexp.MustCompile(`\b(?:a|precio)\s+(\d+(?:[.,]\d+)?)\b`)
	reBuyExplicit   = regexp.MustCompile(`\b(?:compra|costo)\s+(?:a\s+|de\s+)?(\d+(?:[.,]\d+)?)\b`)
	reCompraBefore  = regexp.MustCompile(`\bcompra\s*$`)

	reInitialStock = regexp.MustCompile(`\b(?:con\s+(?:un\s+)?stock(?:\s+inicial)?|stock\s+inicial)\s+(?:de\s+)?(\d+)\b`)
)

// Quantity busca la cantidad de una orden. Prefiere un número seguido de
// palabra de unidad; si hay un solo número suelto lo usa; si hay varios,
// toma el primero en [1,1000] para no confundir un precio con la cantidad.
func Quantity(normalizedText string) *int {
	if m := reQuantityUnit.FindStringSubmatch(normalizedText); m != nil {
		return atoiPtr(m[1])
	}

	nums := reNumber.FindAllString(normalizedText, -1)
	switch {
	case len(nums) == 0:
		return nil
	case len(nums) == 1:
		return atoiPtr(nums[0])
	}
	for _, n := range nums {
		if v, err := strconv.Atoi(n); err == nil && v >= 1 && v <= 1000 {
			return &v
		}
	}
	return nil
}

// Price busca un precio genérico: primero "a|por|precio N [bs]", después
// un número con moneda explícita ("15 bs").
func Price(normalizedText string) *float64 {
	if m := rePriceLead.FindStringSubmatch(normalizedText); m != nil {
		return atofPtr(m[1])
	}
	if m := rePriceCurrency.FindStringSubmatch(normalizedText); m != nil {
		return atofPtr(m[1])
	}
	return nil
}

// SellPrice extrae el precio de venta al crear un producto: "venta N"
// explícito, o un "a|precio N" genérico que no venga precedido por la
// palabra "compra" (ese número le pertenece a BuyPrice).
func SellPrice(normalizedText string) *float64 {
	if m := reSellExplicit.FindStringSubmatch(normalizedText); m != nil {
		return atofPtr(m[1])
	}
	for _, loc := range reSellGeneric.FindAllStringSubmatchIndex(normalizedText, -1) {
		if reCompraBefore.MatchString(normalizedText[:loc[0]]) {
			continue
		}
		return atofPtr(normalizedText[loc[2]:loc[3]])
	}
	return nil
}

// BuyPrice extrae el precio de compra, solo con marcador explícito.
func BuyPrice(normalizedText string) *float64 {
	if m := reBuyExplicit.FindStringSubmatch(normalizedText); m != nil {
		return atofPtr(m[1])
	}
	return nil
}

// InitialStock extrae el stock inicial de una orden de creación de producto.
func InitialStock(normalizedText string) *int {
	if m := reInitialStock.FindStringSubmatch(normalizedText); m != nil {
		return atoiPtr(m[1])
	}
	return nil
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func atofPtr(s string) *float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
