package normalizer

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Tildes_Y_Signos",
			input:    "¿Cuánto cuesta la Paceña?",
			expected: "cuanto cuesta la pacena",
		},
		{
			name:     "Puntuacion_Multiple",
			input:    "¡Vende, ya: 2 cajas!",
			expected: "vende ya 2 cajas",
		},
		{
			name:     "Espacios_Extra",
			input:    "  vende   dos   pacenas  ",
			expected: "vende dos pacenas",
		},
		{
			name:     "Ya_Normalizado",
			input:    "vende 2 pacenas",
			expected: "vende 2 pacenas",
		},
		{
			name:     "Ene_Simplificada",
			input:    "año",
			expected: "ano",
		},
		{
			// Unidecode expande "…" a "...", que también es puntuación
			name:     "Puntos_Suspensivos_Unicode",
			input:    "vender 2 cervezas…",
			expected: "vender 2 cervezas",
		},
		{
			name:     "Solo_Puntos_Suspensivos",
			input:    "…",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, quería %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{
		"¿Cuánto cuesta la Paceña?",
		"Préstale una caja a Juan",
		"",
		"vende 2 pacenas",
		"vender 2 cervezas…",
		"«vende “todo”…»",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize no es idempotente para %q: %q != %q", input, once, twice)
		}
	}
}

func TestStripDiacritics(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"José pagó", "Jose pago"},
		{"Paceña", "Pacena"},
		{"Crea la categoría Vinos", "Crea la categoria Vinos"},
		{"sin tildes", "sin tildes"},
	}

	for _, tc := range testCases {
		got := StripDiacritics(tc.input)
		if got != tc.expected {
			t.Errorf("StripDiacritics(%q) = %q, quería %q", tc.input, got, tc.expected)
		}
	}
}

func TestExpandNumberWords(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Cardinal_Simple",
			input:    "vende dos pacenas",
			expected: "vende 2 pacenas",
		},
		{
			name:     "Compuesta_Media_Docena",
			input:    "llegaron media docena de huaris",
			expected: "llegaron 6 de huaris",
		},
		{
			name:     "Compuesta_Una_Docena",
			input:    "vende una docena",
			expected: "vende 12",
		},
		{
			name:     "Docena_Suelta",
			input:    "una docena y tres mas",
			expected: "12 y 3 mas",
		},
		{
			name:     "Quince",
			input:    "quedan quince botellas",
			expected: "quedan 15 botellas",
		},
		{
			name:     "Media_Sola_No_Expande",
			input:    "media botella",
			expected: "media botella",
		},
		{
			name:     "Sin_Numeros",
			input:    "cuanto cuesta la pacena",
			expected: "cuanto cuesta la pacena",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpandNumberWords(tc.input)
			if got != tc.expected {
				t.Errorf("ExpandNumberWords(%q) = %q, quería %q", tc.input, got, tc.expected)
			}
		})
	}
}
