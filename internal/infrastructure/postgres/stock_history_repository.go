package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo implementación del puerto StockHistoryRepository sobre
// PostgreSQL (usable con pool o tx). La tabla es append-only.
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create persiste un movimiento del historial.
func (r *StockHistoryRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO inventory_history (id, product_id, change_amount, operation_type, operator_id, operation_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.ChangeAmount, string(movement.Direction),
		movement.OperatorID, movement.OperationTime, movement.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}

// DeleteByProduct elimina el historial de un producto (cascada de borrado).
func (r *StockHistoryRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_history WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete history by product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByOperator elimina el historial de un operador (cascada de borrado de
// usuario).
func (r *StockHistoryRepo) DeleteByOperator(ctx context.Context, operatorID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_history WHERE operator_id = $1`, operatorID)
	if err != nil {
		return 0, fmt.Errorf("delete history by operator: %w", err)
	}
	return cmd.RowsAffected(), nil
}
