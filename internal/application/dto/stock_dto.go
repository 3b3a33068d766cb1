package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockChangeRequest delta de stock a aplicar sobre un producto.
type StockChangeRequest struct {
	ProductID string `json:"product_id"`
	Amount    int    `json:"amount"`
	Direction string `json:"direction"` // "in" | "out"
	Notes     string `json:"notes"`
}

// MovementResponse movimiento de inventario para respuestas y reportes.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	ChangeAmount  int       `json:"change_amount"`
	Direction     string    `json:"direction"`
	OperatorID    string    `json:"operator_id"`
	OperatorName  string    `json:"operator_name"`
	OperationTime time.Time `json:"operation_time"`
	Notes         *string   `json:"notes,omitempty"`
}

// FromMovementView mapea la vista unida del historial al DTO.
func FromMovementView(m *entity.StockMovementView) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		ChangeAmount:  m.ChangeAmount,
		Direction:     string(m.Direction),
		OperatorID:    m.OperatorID,
		OperatorName:  m.OperatorName,
		OperationTime: m.OperationTime,
		Notes:         m.Notes,
	}
}

// FromMovementViews mapea una lista de vistas del historial.
func FromMovementViews(list []*entity.StockMovementView) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMovementView(m))
	}
	return out
}
