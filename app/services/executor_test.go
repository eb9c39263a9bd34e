package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
)

func TestAckExecutor(t *testing.T) {
	exec := NewAckExecutor()
	qty := 3

	tests := []struct {
		name        string
		cmd         *models.ParsedCommand
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "venta con producto y cantidad",
			cmd:         &models.ParsedCommand{Intent: intent.RegisterSale, Entities: models.CommandEntities{Product: &models.Product{Name: "Huari"}, Quantity: &qty}},
			wantSuccess: true,
			wantMessage: "Venta registrada: 3 x Huari",
		},
		{
			name:        "venta sin cantidad asume uno",
			cmd:         &models.ParsedCommand{Intent: intent.RegisterSale, Entities: models.CommandEntities{Product: &models.Product{Name: "Huari"}}},
			wantSuccess: true,
			wantMessage: "Venta registrada: 1 x Huari",
		},
		{
			name:        "venta sin producto falla",
			cmd:         &models.ParsedCommand{Intent: intent.RegisterSale},
			wantSuccess: false,
			wantMessage: "No encontré el producto en el catálogo.",
		},
		{
			name:        "prestamo sin persona falla",
			cmd:         &models.ParsedCommand{Intent: intent.CreateLoan},
			wantSuccess: false,
			wantMessage: "Falta el nombre de la persona.",
		},
		{
			name:        "navegacion con destino",
			cmd:         &models.ParsedCommand{Intent: intent.Navigate, Entities: models.CommandEntities{Destination: "/reportes"}},
			wantSuccess: true,
			wantMessage: "Navegando a /reportes",
		},
		{
			name:        "desconocido falla",
			cmd:         &models.ParsedCommand{Intent: intent.Unknown},
			wantSuccess: false,
			wantMessage: "No entendí el comando. Escribe \"ayuda\" para ver ejemplos.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := exec.Execute(tt.cmd)
			require.Equal(t, tt.wantSuccess, result.Success)
			require.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestAckExecutor_Ayuda(t *testing.T) {
	exec := NewAckExecutor()
	result := exec.Execute(&models.ParsedCommand{Intent: intent.Help})
	require.True(t, result.Success)
	require.NotEmpty(t, result.Message)
}
