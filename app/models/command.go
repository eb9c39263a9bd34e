package models

import (
	"time"

	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
)

// ParsedCommand es el único resultado del intérprete: intención, confianza,
// bolsa de entidades y el texto original intacto. Se crea fresco en cada
// llamada y no tiene identidad persistente.
type ParsedCommand struct {
	Intent     intent.Intent   `json:"intent"`
	Confidence float64         `json:"confidence"`
	Entities   CommandEntities `json:"entities"`
	Raw        string          `json:"raw"`
}

// CommandEntities es la bolsa de entidades de forma fija. Cada campo es
// opcional; el ejecutor lee solo los que corresponden a la intención y
// los demás pueden quedar en nil/vacío sin que sea un error.
type CommandEntities struct {
	Product      *Product  `json:"product,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Supplier     *Supplier `json:"supplier,omitempty"`
	Quantity     *int      `json:"quantity,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	SellPrice    *float64  `json:"sell_price,omitempty"`
	BuyPrice     *float64  `json:"buy_price,omitempty"`
	InitialStock *int      `json:"initial_stock,omitempty"`
	Person       string    `json:"person,omitempty"`
	Destination  string    `json:"destination,omitempty"`
	Names        []string  `json:"names,omitempty"`
	ProductName  string    `json:"product_name,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	SupplierName string    `json:"supplier_name,omitempty"`
}

// ExecutionResult es el contrato con el ejecutor de comandos: un mensaje
// legible para el toast y el historial de la interfaz.
type ExecutionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HistoryEntry es una entrada del historial acotado de comandos recientes
type HistoryEntry struct {
	ID      string        `json:"id"`
	Command ParsedCommand `json:"command"`
	Message string        `json:"message,omitempty"`
	At      time.Time     `json:"at"`
}
