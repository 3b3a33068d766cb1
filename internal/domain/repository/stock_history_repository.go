package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockHistoryRepository define el puerto de persistencia del historial de
// inventario. La tabla es append-only: no hay Update; los borrados existen
// solo como cascada al eliminar el producto padre o el operador.
type StockHistoryRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
	DeleteByOperator(ctx context.Context, operatorID string) (int64, error)
}
