package query

import (
	"context"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase búsqueda y agregación de solo lectura sobre productos e historial.
// Lo consumen la capa HTTP y el generador de reportes; nunca muta estado.
type UseCase struct {
	repo repository.QueryRepository
}

// NewUseCase construye el caso de uso de consultas.
func NewUseCase(repo repository.QueryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// GetProduct devuelve un producto por ID, o (nil, nil) si no existe.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.repo.GetProduct(ctx, id)
}

// SearchProducts aplica los filtros conjuntivos del filtro. Sin filtros
// devuelve el catálogo completo.
func (uc *UseCase) SearchProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	filter.Term = strings.TrimSpace(filter.Term)
	filter.Supplier = strings.TrimSpace(filter.Supplier)
	return uc.repo.SearchProducts(ctx, filter)
}

// History devuelve movimientos de inventario filtrados, de más reciente a
// más antiguo, con nombre de producto y username del operador.
func (uc *UseCase) History(ctx context.Context, filter repository.HistoryFilter) ([]*entity.StockMovementView, error) {
	return uc.repo.History(ctx, filter)
}

// LowStockProducts productos con stock en o por debajo de su mínimo.
func (uc *UseCase) LowStockProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.LowStockProducts(ctx)
}

// Categories categorías distintas no vacías del catálogo.
func (uc *UseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}

// Locations ubicaciones distintas no vacías del catálogo.
func (uc *UseCase) Locations(ctx context.Context) ([]string, error) {
	return uc.repo.Locations(ctx)
}
