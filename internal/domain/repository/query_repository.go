package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductFilter filtros conjuntivos (AND) para búsqueda de productos.
// Term y Supplier son substring; Category, Barcode y Location igualdad exacta.
// Term aplica sobre nombre O especificación.
type ProductFilter struct {
	Term             string
	Category         string
	Barcode          string
	Supplier         string
	Location         string
	OnlyBelowMinimum bool
}

// HistoryFilter filtros opcionales para el historial de inventario.
// Direction vacía significa ambos sentidos.
type HistoryFilter struct {
	ProductID  string
	OperatorID string
	Direction  entity.Direction
	From       *time.Time
	To         *time.Time
}

// QueryRepository consultas de solo lectura sobre productos e historial,
// consumidas por la UI y el generador de reportes. Nunca muta estado.
type QueryRepository interface {
	// GetProduct devuelve un producto por ID, o (nil, nil) si no existe.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	SearchProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// History devuelve movimientos de más reciente a más antiguo, unidos con
	// nombre de producto y username del operador.
	History(ctx context.Context, filter HistoryFilter) ([]*entity.StockMovementView, error)
	LowStockProducts(ctx context.Context) ([]*entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}
