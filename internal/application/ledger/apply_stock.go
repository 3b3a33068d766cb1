package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockChangeInput delta de stock con signo dado por Direction.
type StockChangeInput struct {
	ProductID  string
	Amount     int // debe ser > 0
	Direction  entity.Direction
	OperatorID string
	Notes      string
}

// ApplyStockChange aplica el delta en una sola transacción: actualiza
// products.stock y lee el valor resultante en la misma sentencia
// (read-after-write dentro de la tx, a prueba de lost-update). Si el stock
// quedaría negativo toda la transacción se revierte con
// domain.ErrInsufficientStock y no sobrevive ninguna fila de historial. En
// éxito persiste exactamente un registro en inventory_history junto con el
// nuevo stock: ambos o ninguno.
func (uc *UseCase) ApplyStockChange(ctx context.Context, in StockChangeInput) error {
	if in.Amount <= 0 || !in.Direction.Valid() {
		return domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.OperatorID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, historyRepo repository.StockHistoryRepository) error {
		newStock, err := productRepo.AdjustStock(ctx, in.ProductID, in.Amount*in.Direction.Sign())
		if err != nil {
			return err
		}
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		var notes *string
		if in.Notes != "" {
			notes = &in.Notes
		}
		return historyRepo.Create(ctx, &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     in.ProductID,
			ChangeAmount:  in.Amount,
			Direction:     in.Direction,
			OperatorID:    in.OperatorID,
			OperationTime: now,
			Notes:         notes,
		})
	})
	if err != nil {
		return err
	}

	verb := "entrada"
	if in.Direction == entity.DirectionOut {
		verb = "salida"
	}
	action := fmt.Sprintf("%s de stock, producto %s, cantidad %d", verb, in.ProductID, in.Amount)
	var details *string
	if in.Notes != "" {
		details = &in.Notes
	}
	uc.recordAudit(ctx, in.OperatorID, action, details)
	return nil
}
