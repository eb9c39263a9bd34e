package intent

// Intent es la intención clasificada de una orden de voz. El conjunto es
// cerrado: el ejecutor hace switch sobre estos valores exactos.
type Intent string

const (
	RegisterSale     Intent = "register_sale"
	RegisterArrival  Intent = "register_arrival"
	CreateProduct    Intent = "create_product"
	EditProduct      Intent = "edit_product"
	DeleteProduct    Intent = "delete_product"
	SearchProduct    Intent = "search_product"
	ListProducts     Intent = "list_products"
	CheckPrice       Intent = "check_price"
	CheckStock       Intent = "check_stock"
	CreateCategory   Intent = "create_category"
	DeleteCategory   Intent = "delete_category"
	ListCategories   Intent = "list_categories"
	CreateSupplier   Intent = "create_supplier"
	DeleteSupplier   Intent = "delete_supplier"
	ListSuppliers    Intent = "list_suppliers"
	CreateLoan       Intent = "create_loan"
	ReturnLoan       Intent = "return_loan"
	ListLoans        Intent = "list_loans"
	LowStockAlert    Intent = "low_stock_alert"
	DashboardSummary Intent = "dashboard_summary"
	BestSellers      Intent = "best_sellers"
	SetPrice         Intent = "set_price"
	SetStock         Intent = "set_stock"
	Navigate         Intent = "navigate"
	Help             Intent = "help"
	Unknown          Intent = "unknown"
)

// ScoreCeiling normaliza el puntaje ganador a una confianza en [0,1].
// 25 corresponde empíricamente a un match fuerte con varios gatillos;
// no es una probabilidad. Ajustable desde la configuración al arrancar.
var ScoreCeiling = 25.0

// Classify puntúa cada regla contra el texto normalizado y devuelve la
// intención ganadora con su confianza. Los anti-patrones vetan la regla
// completa; los empates se resuelven por el orden fijo de la tabla
// (gana la primera definida). Sin puntaje devuelve Unknown con 0.
func Classify(normalizedText string) (Intent, float64) {
	best := Unknown
	bestScore := 0

	for _, rule := range Rules {
		score := rule.score(normalizedText)
		if score > bestScore {
			best = rule.Intent
			bestScore = score
		}
	}

	if bestScore == 0 {
		return Unknown, 0
	}

	confidence := float64(bestScore) / ScoreCeiling
	if confidence > 1 {
		confidence = 1
	}
	return best, confidence
}

func (r Rule) score(normalizedText string) int {
	for _, anti := range r.Anti {
		if anti.MatchString(normalizedText) {
			return 0
		}
	}
	score := 0
	for _, t := range r.Triggers {
		if t.Pattern.MatchString(normalizedText) {
			score += t.Weight
		}
	}
	return score
}
