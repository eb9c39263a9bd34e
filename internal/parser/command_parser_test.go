package parser

import (
	"reflect"
	"testing"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
)

func testSnapshot() *models.CatalogSnapshot {
	return &models.CatalogSnapshot{
		Products: []models.Product{
			{ID: "p-001", Name: "Cerveza Paceña 620ml", Aliases: []string{"Pacena", "Paceñita"}, Stock: 48, SellPrice: 14},
			{ID: "p-002", Name: "Cerveza Huari 620ml", Aliases: []string{"Huari"}, Stock: 36, SellPrice: 15},
			{ID: "p-003", Name: "Fernet Branca 750ml", Aliases: []string{"Fernet"}, Stock: 10, SellPrice: 95},
		},
		Categories: []models.Category{
			{ID: "c-001", Name: "Cervezas"},
			{ID: "c-002", Name: "Licores"},
		},
		Suppliers: []models.Supplier{
			{ID: "s-001", Name: "CBN"},
		},
		Version: "test-v1",
	}
}

func TestParseCommand_Venta(t *testing.T) {
	snapshot := testSnapshot()

	cmd := ParseCommand("Vende 2 Paceñas", snapshot)

	if cmd.Intent != intent.RegisterSale {
		t.Fatalf("intención %s, quería register_sale", cmd.Intent)
	}
	if cmd.Entities.Quantity == nil || *cmd.Entities.Quantity != 2 {
		t.Errorf("cantidad %v, quería 2", cmd.Entities.Quantity)
	}
	if cmd.Entities.Product == nil || cmd.Entities.Product.ID != "p-001" {
		t.Errorf("producto %v, quería p-001", cmd.Entities.Product)
	}
	if cmd.Raw != "Vende 2 Paceñas" {
		t.Errorf("Raw debe conservar el texto original, fue %q", cmd.Raw)
	}
}

func TestParseCommand_VentaSinCantidad(t *testing.T) {
	cmd := ParseCommand("Vende Paceña", testSnapshot())

	if cmd.Intent != intent.RegisterSale {
		t.Fatalf("intención %s, quería register_sale", cmd.Intent)
	}
	// Vender sin cantidad explícita es vender una unidad
	if cmd.Entities.Quantity == nil || *cmd.Entities.Quantity != 1 {
		t.Errorf("cantidad %v, quería 1 por defecto", cmd.Entities.Quantity)
	}
}

func TestParseCommand_ConsultaPrecio(t *testing.T) {
	cmd := ParseCommand("¿Cuánto cuesta la Paceña?", testSnapshot())

	if cmd.Intent != intent.CheckPrice {
		t.Fatalf("intención %s, quería check_price", cmd.Intent)
	}
	if cmd.Entities.Product == nil || cmd.Entities.Product.ID != "p-001" {
		t.Errorf("producto %v, quería p-001", cmd.Entities.Product)
	}
	// Una consulta no lleva cantidad por defecto
	if cmd.Entities.Quantity != nil {
		t.Errorf("cantidad %d, quería nil", *cmd.Entities.Quantity)
	}
}

func TestParseCommand_PrestamoConPersona(t *testing.T) {
	cmd := ParseCommand("Préstale una caja de Huari a Juan", testSnapshot())

	if cmd.Intent != intent.CreateLoan {
		t.Fatalf("intención %s, quería create_loan", cmd.Intent)
	}
	if cmd.Entities.Person != "Juan" {
		t.Errorf("persona %q, quería Juan", cmd.Entities.Person)
	}
	if cmd.Entities.Quantity == nil || *cmd.Entities.Quantity != 1 {
		t.Errorf("cantidad %v, quería 1 (una caja)", cmd.Entities.Quantity)
	}
	if cmd.Entities.Product == nil || cmd.Entities.Product.ID != "p-002" {
		t.Errorf("producto %v, quería p-002", cmd.Entities.Product)
	}
}

func TestParseCommand_CrearProducto(t *testing.T) {
	cmd := ParseCommand("Crea un producto llamado Ron Santa Teresa en categoria Licores precio venta 45 compra 30 con stock inicial de 10", testSnapshot())

	if cmd.Intent != intent.CreateProduct {
		t.Fatalf("intención %s, quería create_product", cmd.Intent)
	}
	if cmd.Entities.ProductName != "Ron Santa Teresa" {
		t.Errorf("nombre %q, quería Ron Santa Teresa", cmd.Entities.ProductName)
	}
	if cmd.Entities.SellPrice == nil || *cmd.Entities.SellPrice != 45 {
		t.Errorf("precio venta %v, quería 45", cmd.Entities.SellPrice)
	}
	if cmd.Entities.BuyPrice == nil || *cmd.Entities.BuyPrice != 30 {
		t.Errorf("precio compra %v, quería 30", cmd.Entities.BuyPrice)
	}
	if cmd.Entities.InitialStock == nil || *cmd.Entities.InitialStock != 10 {
		t.Errorf("stock inicial %v, quería 10", cmd.Entities.InitialStock)
	}
	if cmd.Entities.Category == nil || cmd.Entities.Category.ID != "c-002" {
		t.Errorf("categoría %v, quería c-002", cmd.Entities.Category)
	}
}

func TestParseCommand_CrearProductoCategoriaDesconocida(t *testing.T) {
	// "en categoria Refrescos" no resuelve contra el catálogo; se
	// conserva el match directo del texto completo (Cervezas)
	cmd := ParseCommand("Crear producto Chuflay cerveza en categoria Refrescos", testSnapshot())

	if cmd.Intent != intent.CreateProduct {
		t.Fatalf("intención %s, quería create_product", cmd.Intent)
	}
	if cmd.Entities.CategoryName != "Refrescos" {
		t.Errorf("CategoryName %q, quería Refrescos", cmd.Entities.CategoryName)
	}
	if cmd.Entities.Category == nil || cmd.Entities.Category.ID != "c-001" {
		t.Errorf("categoría %v, quería c-001", cmd.Entities.Category)
	}
}

func TestParseCommand_CrearCategoriasEnLote(t *testing.T) {
	cmd := ParseCommand("Crea las categorías Vinos, Whiskys y Singanis", testSnapshot())

	if cmd.Intent != intent.CreateCategory {
		t.Fatalf("intención %s, quería create_category", cmd.Intent)
	}
	expected := []string{"Vinos", "Whiskys", "Singanis"}
	if !reflect.DeepEqual(cmd.Entities.Names, expected) {
		t.Errorf("nombres %v, quería %v", cmd.Entities.Names, expected)
	}
	if cmd.Entities.CategoryName != "Vinos" {
		t.Errorf("CategoryName %q, quería Vinos", cmd.Entities.CategoryName)
	}
}

func TestParseCommand_Navegacion(t *testing.T) {
	cmd := ParseCommand("Llévame a los reportes", testSnapshot())

	if cmd.Intent != intent.Navigate {
		t.Fatalf("intención %s, quería navigate", cmd.Intent)
	}
	if cmd.Entities.Destination != "/reportes" {
		t.Errorf("destino %q, quería /reportes", cmd.Entities.Destination)
	}
}

func TestParseCommand_Desconocido(t *testing.T) {
	cmd := ParseCommand("asdf qwerty zzz", testSnapshot())

	if cmd.Intent != intent.Unknown {
		t.Fatalf("intención %s, quería unknown", cmd.Intent)
	}
	if cmd.Confidence != 0 {
		t.Errorf("confianza %f, quería 0", cmd.Confidence)
	}
	if cmd.Entities.Quantity != nil {
		t.Errorf("unknown no debe traer cantidad por defecto")
	}
}

// El intérprete es total: ninguna entrada lo hace fallar.
func TestParseCommand_NuncaFalla(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"¿¡!?",
		"1234567890",
		"vende vende vende vende vende",
	}
	for _, input := range inputs {
		cmd := ParseCommand(input, testSnapshot())
		if cmd == nil {
			t.Fatalf("ParseCommand(%q) devolvió nil", input)
		}
	}
}

func TestParseCommand_SnapshotNil(t *testing.T) {
	cmd := ParseCommand("vende 2 pacenas", nil)

	if cmd.Intent != intent.RegisterSale {
		t.Fatalf("intención %s, quería register_sale", cmd.Intent)
	}
	if cmd.Entities.Product != nil {
		t.Errorf("sin catálogo no puede haber producto resuelto")
	}
}

// Mismo texto y mismo catálogo producen el mismo resultado siempre.
func TestParseCommand_Determinista(t *testing.T) {
	snapshot := testSnapshot()
	inputs := []string{
		"Vende 2 Paceñas",
		"¿Cuánto cuesta la Paceña?",
		"Préstale una caja de Huari a Juan",
		"Llévame a ventas",
	}
	for _, input := range inputs {
		first := ParseCommand(input, snapshot)
		for i := 0; i < 5; i++ {
			again := ParseCommand(input, snapshot)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("ParseCommand(%q) no es determinista", input)
			}
		}
	}
}
