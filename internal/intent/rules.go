package intent

import "regexp"

// Trigger es un patrón que acumula evidencia para una intención.
type Trigger struct {
	Pattern *regexp.Regexp
	Weight  int
}

// Rule define los gatillos de una intención y sus anti-patrones de veto.
// Los patrones corren sobre texto ya normalizado (minúsculas, sin tildes,
// sin puntuación), por eso no llevan (?i) ni clases con acentos.
type Rule struct {
	Intent   Intent
	Triggers []Trigger
	Anti     []*regexp.Regexp
}

func re(pattern string) *regexp.Regexp { return regexp.MustCompile(pattern) }

// Rules es la tabla de reglas, datos inmutables a nivel de proceso.
// El orden importa: ante empate de puntaje gana la regla definida primero.
// Una intención nueva se agrega con una entrada más, sin tocar Classify.
var Rules = []Rule{
	{
		Intent: RegisterSale,
		Triggers: []Trigger{
			{re(`\bvende(?:r|me|le)?\b`), 10},
			{re(`\bvendi\b`), 8},
			{re(`\bse vendio\b`), 8},
			{re(`\b(?:registra(?:r)?|anota(?:r)?)\s+(?:una\s+)?venta\b`), 10},
			{re(`\bdespacha(?:r)?\b`), 5},
		},
		// "cuesta/vale/precio" indican consulta de precio, no una venta
		Anti: []*regexp.Regexp{
			re(`\bprecio\b`),
			re(`\bcuesta\b`),
			re(`\bvale\b`),
		},
	},
	{
		Intent: RegisterArrival,
		Triggers: []Trigger{
			{re(`\bllego\b|\bllegaron\b`), 10},
			{re(`\bingreso\b|\bingresaron\b`), 8},
			{re(`\b(?:registra(?:r)?|anota(?:r)?)\s+(?:una\s+)?llegada\b`), 10},
			{re(`\bentrada de\b`), 8},
			{re(`\brecibi(?:mos)?\b`), 8},
		},
	},
	{
		Intent: CreateProduct,
		Triggers: []Trigger{
			{re(`\b(?:crea(?:r)?|agrega(?:r)?|anade|anadir|registra(?:r)?)\s+(?:un\s+)?producto\b`), 10},
			{re(`\bnuevo producto\b`), 10},
			{re(`\bproducto nuevo\b`), 8},
		},
	},
	{
		Intent: EditProduct,
		Triggers: []Trigger{
			{re(`\b(?:edita(?:r)?|modifica(?:r)?|cambia(?:r)?)\s+(?:el\s+)?producto\b`), 10},
		},
		// cambiar precio/stock tienen intenciones propias
		Anti: []*regexp.Regexp{
			re(`\bprecio\b`),
			re(`\bstock\b`),
		},
	},
	{
		Intent: DeleteProduct,
		Triggers: []Trigger{
			{re(`\b(?:elimina(?:r)?|borra(?:r)?|quita(?:r)?)\s+(?:el\s+)?producto\b`), 10},
			{re(`\b(?:elimina(?:r)?|borra(?:r)?)\b`), 3},
		},
		Anti: []*regexp.Regexp{
			re(`\bcategorias?\b`),
			re(`\bproveedor(?:es)?\b`),
			re(`\bprestamos?\b`),
		},
	},
	{
		Intent: SearchProduct,
		Triggers: []Trigger{
			{re(`\bbusca(?:r|me)?\b`), 10},
			{re(`\bencuentra\b`), 8},
			{re(`\bdonde esta\b`), 6},
		},
	},
	{
		Intent: ListProducts,
		Triggers: []Trigger{
			{re(`\b(?:lista(?:r|me)?|ver|mostrar|muestrame)\s+(?:los\s+|todos los\s+)?productos\b`), 10},
			{re(`\bque productos\s+(?:hay|tengo|tenemos)\b`), 8},
			{re(`\binventario\b`), 6},
		},
	},
	{
		Intent: CheckPrice,
		Triggers: []Trigger{
			{re(`\bcuanto cuesta\b`), 10},
			{re(`\bcuanto vale\b`), 10},
			{re(`\bque precio\b`), 8},
			{re(`\bprecio de\b`), 8},
			{re(`\ba cuanto esta\b`), 6},
		},
		Anti: []*regexp.Regexp{
			re(`\b(?:crea(?:r)?|nuevo|nueva|registra(?:r)?|cambia(?:r)?|actualiza(?:r)?|pon(?:er)?)\b`),
		},
	},
	{
		Intent: CheckStock,
		Triggers: []Trigger{
			{re(`\bcuant[oa]s?\b.*\b(?:hay|queda(?:n)?|tengo|tenemos)\b`), 10},
			{re(`\bstock de\b`), 8},
			{re(`\bhay stock\b`), 8},
			{re(`\ben stock\b`), 6},
		},
		Anti: []*regexp.Regexp{
			re(`\b(?:ajusta(?:r)?|corrige|corregir|pon(?:er)?|actualiza(?:r)?|cambia(?:r)?)\b`),
		},
	},
	{
		Intent: CreateCategory,
		Triggers: []Trigger{
			{re(`\b(?:crea(?:r)?|agrega(?:r)?|anade|anadir|registra(?:r)?)\s+(?:una\s+|la\s+|las\s+)?categorias?\b`), 10},
			{re(`\bnuevas?\s+categorias?\b`), 10},
		},
	},
	{
		Intent: DeleteCategory,
		Triggers: []Trigger{
			{re(`\b(?:elimina(?:r)?|borra(?:r)?|quita(?:r)?)\s+(?:una\s+|la\s+|las\s+)?categorias?\b`), 10},
		},
	},
	{
		Intent: ListCategories,
		Triggers: []Trigger{
			{re(`\b(?:lista(?:r|me)?|ver|mostrar|muestrame)\s+(?:las\s+)?categorias\b`), 10},
			{re(`\bque categorias\s+(?:hay|tengo|tenemos)\b`), 8},
		},
	},
	{
		Intent: CreateSupplier,
		Triggers: []Trigger{
			{re(`\b(?:crea(?:r)?|agrega(?:r)?|anade|anadir|registra(?:r)?)\s+(?:un\s+|el\s+|los\s+)?proveedor(?:es)?\b`), 10},
			{re(`\bnuevos?\s+proveedor(?:es)?\b`), 10},
		},
	},
	{
		Intent: DeleteSupplier,
		Triggers: []Trigger{
			{re(`\b(?:elimina(?:r)?|borra(?:r)?|quita(?:r)?)\s+(?:un\s+|el\s+|los\s+)?proveedor(?:es)?\b`), 10},
		},
	},
	{
		Intent: ListSuppliers,
		Triggers: []Trigger{
			{re(`\b(?:lista(?:r|me)?|ver|mostrar|muestrame)\s+(?:los\s+)?proveedores\b`), 10},
			{re(`\bque proveedores\s+(?:hay|tengo|tenemos)\b`), 8},
		},
	},
	{
		Intent: CreateLoan,
		Triggers: []Trigger{
			{re(`\bpresta(?:r|me|le)?\b|\bpreste\b`), 10},
			{re(`\bfia(?:r|le|do)?\b|\bfie\b`), 10},
			{re(`\bprestamo\s+(?:a|para)\b`), 10},
			{re(`\ba credito\b`), 6},
		},
	},
	{
		Intent: ReturnLoan,
		Triggers: []Trigger{
			{re(`\bdevolvio\b|\bdevuelve\b|\bdevolucion\b`), 10},
			{re(`\bpago\s+(?:el|su)\s+(?:prestamo|fiado|deuda)\b`), 10},
			{re(`\bme pago\b`), 8},
		},
	},
	{
		Intent: ListLoans,
		Triggers: []Trigger{
			{re(`\b(?:lista(?:r|me)?|ver|mostrar|muestrame)\s+(?:los\s+|las\s+)?(?:prestamos|fiados|deudas)\b`), 10},
			{re(`\bquien(?:es)?\s+(?:me\s+)?debe(?:n)?\b`), 8},
		},
	},
	{
		Intent: LowStockAlert,
		Triggers: []Trigger{
			{re(`\bstock bajo\b`), 10},
			{re(`\bpoco stock\b`), 8},
			{re(`\bpor acabar(?:se)?\b`), 8},
			{re(`\bpor agotar(?:se)?\b|\bagotando\b`), 8},
			{re(`\bque\s+(?:esta\s+)?falta(?:ndo)?\b`), 6},
		},
	},
	{
		Intent: DashboardSummary,
		Triggers: []Trigger{
			{re(`\bresumen\b`), 10},
			{re(`\bcuanto vendi hoy\b`), 12},
			{re(`\bventas de(?:l dia| hoy)\b`), 10},
			{re(`\bcomo va el negocio\b|\bcomo vamos\b`), 8},
		},
	},
	{
		Intent: BestSellers,
		Triggers: []Trigger{
			{re(`\bmas vendidos?\b`), 10},
			{re(`\bque se vende mas\b`), 12},
			{re(`\bmejores ventas\b`), 8},
			{re(`\btop\b`), 5},
		},
	},
	{
		Intent: SetPrice,
		Triggers: []Trigger{
			{re(`\b(?:cambia(?:r)?|actualiza(?:r)?|pon(?:er|le)?|sube|baja|ajusta(?:r)?)\s+(?:el\s+)?precio\b`), 10},
			{re(`\bnuevo precio\b`), 8},
			{re(`\bahora\s+(?:cuesta|vale)\b`), 8},
		},
	},
	{
		Intent: SetStock,
		Triggers: []Trigger{
			{re(`\b(?:ajusta(?:r)?|corrige|corregir|pon(?:er|le)?|actualiza(?:r)?|cambia(?:r)?)\s+(?:el\s+)?stock\b`), 10},
			{re(`\bstock\s+(?:a|en)\s+\d+\b`), 8},
		},
	},
	{
		Intent: Navigate,
		Triggers: []Trigger{
			{re(`\bllevame\b`), 10},
			{re(`\b(?:ir|ve|anda|vamos)\s+a(?:l)?\b`), 8},
			{re(`\babr[ei]r?\b`), 8},
			{re(`\bmuestrame la pantalla\b|\bpantalla de\b`), 8},
		},
	},
	{
		Intent: Help,
		Triggers: []Trigger{
			{re(`\bayuda\b`), 10},
			{re(`\bque puedes hacer\b`), 10},
			{re(`\bcomandos\b`), 8},
			{re(`\bcomo funciona\b`), 6},
		},
	},
}
