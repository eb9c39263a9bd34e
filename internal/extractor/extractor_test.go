package extractor

import "testing"

func TestQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected *int
	}{
		{
			name:     "Numero_Con_Unidad",
			input:    "llegaron 3 cajas de huari",
			expected: intPtr(3),
		},
		{
			name:     "Numero_Suelto_Unico",
			input:    "vende 2 pacenas",
			expected: intPtr(2),
		},
		{
			name:     "Varios_Numeros_Primero_En_Rango",
			input:    "vende 2 pacenas a 15 bs",
			expected: intPtr(2),
		},
		{
			name:     "Varios_Numeros_Unidad_Gana",
			input:    "a 15 bs vende 2 botellas",
			expected: intPtr(2),
		},
		{
			// Con tres números el primero fuera de rango se salta
			name:     "Tres_Numeros_Primero_En_Rango",
			input:    "factura 2024 vende 12 huaris por 50",
			expected: intPtr(12),
		},
		{
			name:     "Tres_Numeros_Ninguno_En_Rango",
			input:    "orden 5000 factura 2024 del 2023",
			expected: nil,
		},
		{
			name:     "Sin_Numeros",
			input:    "cuanto cuesta la pacena",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Quantity(tc.input)
			checkIntPtr(t, got, tc.expected)
		})
	}
}

func TestPrice(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected *float64
	}{
		{
			name:     "Preposicion_A",
			input:    "cambia el precio de la pacena a 15",
			expected: floatPtr(15),
		},
		{
			name:     "Moneda_Explicita",
			input:    "la huari cuesta 15 bs",
			expected: floatPtr(15),
		},
		{
			name:     "Decimal_Con_Coma",
			input:    "ponla por 12,5",
			expected: floatPtr(12.5),
		},
		{
			name:     "Sin_Precio",
			input:    "vende 2 pacenas",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Price(tc.input)
			checkFloatPtr(t, got, tc.expected)
		})
	}
}

func TestSellPriceBuyPrice(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		sell *float64
		buy  *float64
	}{
		{
			name: "Ambos_Explicitos",
			in:   "crea producto ron precio venta 45 compra 30",
			sell: floatPtr(45),
			buy:  floatPtr(30),
		},
		{
			name: "Solo_Compra_No_Contamina_Venta",
			in:   "crea producto ron compra a 30",
			sell: nil,
			buy:  floatPtr(30),
		},
		{
			name: "Generico_A_Es_Venta",
			in:   "crea producto ron a 45",
			sell: floatPtr(45),
			buy:  nil,
		},
		{
			name: "Costo_Es_Compra",
			in:   "crea producto ron costo de 30",
			sell: nil,
			buy:  floatPtr(30),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkFloatPtr(t, SellPrice(tc.in), tc.sell)
			checkFloatPtr(t, BuyPrice(tc.in), tc.buy)
		})
	}
}

func TestInitialStock(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected *int
	}{
		{"Con_Stock_Inicial_De", "crea producto ron con stock inicial de 24", intPtr(24)},
		{"Con_Un_Stock", "crea producto ron con un stock 10", intPtr(10)},
		{"Stock_Inicial_Directo", "stock inicial 8", intPtr(8)},
		{"Sin_Stock", "crea producto ron a 45", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkIntPtr(t, InitialStock(tc.input), tc.expected)
		})
	}
}

func TestPerson(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "A_Final_Nombre_Compuesto",
			input:    "Prestale 2 pacenas a Juan Perez",
			expected: "Juan Perez",
		},
		{
			name:     "Despues_De_Verbo",
			input:    "Cobrale a Maria",
			expected: "Maria",
		},
		{
			name:     "Pago_De",
			input:    "Registra el pago de Maria",
			expected: "Maria",
		},
		{
			name:     "Articulo_Capitalizado_No_Es_Nombre",
			input:    "Prestale una caja a El",
			expected: "",
		},
		{
			name:     "Segunda_Palabra_Funcional_Se_Recorta",
			input:    "Fiale una pacena a Pedro Que",
			expected: "Pedro",
		},
		{
			name:     "Sin_Persona",
			input:    "vende 2 pacenas",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Person(tc.input)
			if got != tc.expected {
				t.Errorf("Person(%q) = %q, quería %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDestination(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"llevame a productos", "/productos"},
		{"abre ventas", "/ventas"},
		{"ir a prestamos", "/prestamos"},
		{"vamos al dashboard", "/"},
		{"llevame a los reportes", "/reportes"},
		{"abre la pantalla", ""},
	}

	for _, tc := range testCases {
		got := Destination(tc.input)
		if got != tc.expected {
			t.Errorf("Destination(%q) = %q, quería %q", tc.input, got, tc.expected)
		}
	}
}

func TestNames(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Lista_Con_Comas_Y_Conjuncion",
			input:    "Crea las categorias Vinos, Cervezas y Licores",
			expected: []string{"Vinos", "Cervezas", "Licores"},
		},
		{
			name:     "Que_Se_Llame",
			input:    "Crea una categoria que se llame Bebidas Energeticas",
			expected: []string{"Bebidas Energeticas"},
		},
		{
			name:     "Otro_Que_Diga",
			input:    "Crea categoria Vinos y otro que diga Cervezas",
			expected: []string{"Vinos", "Cervezas"},
		},
		{
			name:     "Proveedores",
			input:    "Agrega los proveedores CBN y Salvietti",
			expected: []string{"Cbn", "Salvietti"},
		},
		{
			name:     "Numeral_Inicial_Se_Descarta",
			input:    "Crea categorias 1 Vinos, 2 Cervezas",
			expected: []string{"Vinos", "Cervezas"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Names(tc.input)
			if len(got) != len(tc.expected) {
				t.Fatalf("Names(%q) = %v, quería %v", tc.input, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Names(%q)[%d] = %q, quería %q", tc.input, i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestProductName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Llamado_Con_Clausulas",
			input:    "Crea un producto llamado Ron Santa Teresa en categoria Licores precio venta 45",
			expected: "Ron Santa Teresa",
		},
		{
			name:     "Directo_Con_Precio",
			input:    "nuevo producto Singani Rujero a 60",
			expected: "Singani Rujero",
		},
		{
			name:     "Con_Stock",
			input:    "agrega producto Vino Aranjuez con stock 12",
			expected: "Vino Aranjuez",
		},
		{
			name:     "Sin_Frase_De_Creacion",
			input:    "vende 2 pacenas",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProductName(tc.input)
			if got != tc.expected {
				t.Errorf("ProductName(%q) = %q, quería %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCategoryName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"crea producto ron en la categoria licores", "Licores"},
		{"en categoria licores precio 120", "Licores"},
		{"muestrame los productos de la categoria vinos", "Vinos"},
		{"vende 2 pacenas", ""},
	}

	for _, tc := range testCases {
		got := CategoryName(tc.input)
		if got != tc.expected {
			t.Errorf("CategoryName(%q) = %q, quería %q", tc.input, got, tc.expected)
		}
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func checkIntPtr(t *testing.T, got, expected *int) {
	t.Helper()
	switch {
	case got == nil && expected == nil:
	case got == nil || expected == nil:
		t.Errorf("resultado %v, quería %v", fmtIntPtr(got), fmtIntPtr(expected))
	case *got != *expected:
		t.Errorf("resultado %d, quería %d", *got, *expected)
	}
}

func checkFloatPtr(t *testing.T, got, expected *float64) {
	t.Helper()
	switch {
	case got == nil && expected == nil:
	case got == nil || expected == nil:
		t.Errorf("resultado %v, quería %v", got, expected)
	case *got != *expected:
		t.Errorf("resultado %g, quería %g", *got, *expected)
	}
}

func fmtIntPtr(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
