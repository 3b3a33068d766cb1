package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Get* devuelve (nil, nil) cuando no hay fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// AdjustStock suma delta (puede ser negativo) a products.stock y devuelve
	// el stock resultante leído en la misma sentencia (RETURNING). Devuelve
	// domain.ErrNotFound si el producto no existe y domain.ErrInsufficientStock
	// si la base rechaza el valor negativo antes de poder leerlo.
	AdjustStock(ctx context.Context, productID string, delta int) (int, error)
	// Delete devuelve domain.ErrNotFound si no había fila que borrar.
	Delete(ctx context.Context, id string) error
}
