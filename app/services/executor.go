package services

import (
	"fmt"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
	"github.com/ronaldmendzas/licor-system-sub000/internal/parser"
)

// CommandExecutor ejecuta un comando ya interpretado. La interpretación
// y la ejecución están separadas para poder conectar otros backends.
type CommandExecutor interface {
	Execute(cmd *models.ParsedCommand) models.ExecutionResult
}

// AckExecutor confirma comandos sin tocar inventario. Sirve como
// ejecutor por defecto mientras no hay backend transaccional.
type AckExecutor struct{}

// NewAckExecutor crea el ejecutor de confirmación
func NewAckExecutor() *AckExecutor {
	return &AckExecutor{}
}

// Execute produce el mensaje de confirmación según la intención
func (ae *AckExecutor) Execute(cmd *models.ParsedCommand) models.ExecutionResult {
	switch cmd.Intent {
	case intent.Help:
		return models.ExecutionResult{Success: true, Message: parser.HelpText}

	case intent.Unknown:
		return models.ExecutionResult{
			Success: false,
			Message: "No entendí el comando. Escribe \"ayuda\" para ver ejemplos.",
		}

	case intent.RegisterSale:
		if cmd.Entities.Product == nil {
			return models.ExecutionResult{Success: false, Message: "No encontré el producto en el catálogo."}
		}
		qty := 1
		if cmd.Entities.Quantity != nil {
			qty = *cmd.Entities.Quantity
		}
		return models.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Venta registrada: %d x %s", qty, cmd.Entities.Product.Name),
		}

	case intent.RegisterArrival:
		if cmd.Entities.Product == nil {
			return models.ExecutionResult{Success: false, Message: "No encontré el producto en el catálogo."}
		}
		qty := 1
		if cmd.Entities.Quantity != nil {
			qty = *cmd.Entities.Quantity
		}
		return models.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Llegada registrada: %d x %s", qty, cmd.Entities.Product.Name),
		}

	case intent.CreateProduct:
		if cmd.Entities.ProductName == "" {
			return models.ExecutionResult{Success: false, Message: "Falta el nombre del producto nuevo."}
		}
		return models.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Producto creado: %s", cmd.Entities.ProductName),
		}

	case intent.DeleteProduct, intent.EditProduct, intent.SetPrice, intent.SetStock,
		intent.CheckPrice, intent.CheckStock, intent.SearchProduct:
		if cmd.Entities.Product == nil {
			return models.ExecutionResult{Success: false, Message: "No encontré el producto en el catálogo."}
		}
		return models.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Comando sobre %s recibido.", cmd.Entities.Product.Name),
		}

	case intent.CreateCategory:
		if len(cmd.Entities.Names) == 0 && cmd.Entities.CategoryName == "" {
			return models.ExecutionResult{Success: false, Message: "Falta el nombre de la categoría."}
		}
		return models.ExecutionResult{Success: true, Message: "Categoría creada."}

	case intent.CreateSupplier:
		if len(cmd.Entities.Names) == 0 && cmd.Entities.SupplierName == "" {
			return models.ExecutionResult{Success: false, Message: "Falta el nombre del proveedor."}
		}
		return models.ExecutionResult{Success: true, Message: "Proveedor creado."}

	case intent.DeleteCategory:
		if cmd.Entities.Category == nil && cmd.Entities.CategoryName == "" {
			return models.ExecutionResult{Success: false, Message: "No encontré la categoría."}
		}
		return models.ExecutionResult{Success: true, Message: "Categoría eliminada."}

	case intent.DeleteSupplier:
		if cmd.Entities.Supplier == nil && cmd.Entities.SupplierName == "" {
			return models.ExecutionResult{Success: false, Message: "No encontré el proveedor."}
		}
		return models.ExecutionResult{Success: true, Message: "Proveedor eliminado."}

	case intent.CreateLoan, intent.ReturnLoan:
		if cmd.Entities.Person == "" {
			return models.ExecutionResult{Success: false, Message: "Falta el nombre de la persona."}
		}
		return models.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Movimiento de préstamo para %s registrado.", cmd.Entities.Person),
		}

	case intent.Navigate:
		if cmd.Entities.Destination == "" {
			return models.ExecutionResult{Success: false, Message: "No reconocí la pantalla de destino."}
		}
		return models.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Navegando a %s", cmd.Entities.Destination),
		}

	default:
		return models.ExecutionResult{Success: true, Message: "Comando recibido."}
	}
}
