// Package parser es el punto de entrada del intérprete de órdenes de voz:
// normaliza el texto, clasifica la intención, corre los extractores de
// entidades y resuelve menciones contra el catálogo, todo en una sola
// pasada síncrona y sin efectos. El resultado es un ParsedCommand que el
// ejecutor (fuera de este núcleo) convierte en efectos sobre la base.
package parser

import (
	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/internal/extractor"
	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
	"github.com/ronaldmendzas/licor-system-sub000/internal/matcher"
	"github.com/ronaldmendzas/licor-system-sub000/internal/normalizer"
)

// ParseCommand interpreta una orden dictada contra una foto del catálogo.
// Nunca lanza pánico ni hace I/O: ante texto inentendible devuelve
// intención unknown con confianza 0 y entidades vacías. Con el mismo
// texto y el mismo catálogo el resultado es idéntico bit a bit.
func ParseCommand(text string, snapshot *models.CatalogSnapshot) *models.ParsedCommand {
	normalizedText := normalizer.Normalize(text)
	// Los extractores numéricos ven las palabras numéricas ya en dígitos
	numericText := normalizer.ExpandNumberWords(normalizedText)
	// El texto crudo conserva mayúsculas: las necesitan los nombres propios
	rawText := normalizer.StripDiacritics(text)

	it, confidence := intent.Classify(normalizedText)

	var ents models.CommandEntities
	ents.Quantity = extractor.Quantity(numericText)
	ents.Price = extractor.Price(numericText)
	ents.Person = extractor.Person(rawText)
	ents.Destination = extractor.Destination(normalizedText)

	if snapshot != nil {
		ents.Product = matcher.MatchProduct(rawText, snapshot.Products)
		ents.Category = matcher.MatchCategory(rawText, snapshot.Categories)
		ents.Supplier = matcher.MatchSupplier(rawText, snapshot.Suppliers)
	}

	switch it {
	case intent.CreateCategory, intent.DeleteCategory:
		ents.Names = extractor.Names(rawText)
		if len(ents.Names) > 0 {
			ents.CategoryName = ents.Names[0]
		}

	case intent.CreateSupplier, intent.DeleteSupplier:
		ents.Names = extractor.Names(rawText)
		if len(ents.Names) > 0 {
			ents.SupplierName = ents.Names[0]
		}

	case intent.CreateProduct:
		ents.ProductName = extractor.ProductName(rawText)
		ents.CategoryName = extractor.CategoryName(normalizedText)
		ents.SellPrice = extractor.SellPrice(numericText)
		ents.BuyPrice = extractor.BuyPrice(numericText)
		ents.InitialStock = extractor.InitialStock(numericText)
		// La referencia explícita "en categoría X" manda sobre el match
		// difuso contra el texto completo, pero si no resuelve a nada
		// se conserva el match directo
		if ents.CategoryName != "" && snapshot != nil {
			if cat := matcher.MatchCategory(ents.CategoryName, snapshot.Categories); cat != nil {
				ents.Category = cat
			}
		}

	case intent.ListProducts, intent.SearchProduct:
		// Pista secundaria de filtro cuando no se resolvió categoría
		if ents.Category == nil {
			ents.CategoryName = extractor.CategoryName(normalizedText)
		}
	}

	// Vender o recibir sin cantidad explícita significa una unidad.
	// Cualquier otra intención deja la cantidad en nil.
	if (it == intent.RegisterSale || it == intent.RegisterArrival) && ents.Quantity == nil {
		one := 1
		ents.Quantity = &one
	}

	return &models.ParsedCommand{
		Intent:     it,
		Confidence: confidence,
		Entities:   ents,
		Raw:        text,
	}
}
