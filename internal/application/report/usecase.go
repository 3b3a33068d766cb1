package report

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Generator puerto de render de reportes. El núcleo de consultas solo entrega
// datos; la librería de PDF vive del lado de infraestructura.
type Generator interface {
	InventoryReport(ctx context.Context, data InventoryReportData) ([]byte, error)
	MovementsReport(ctx context.Context, data MovementsReportData) ([]byte, error)
}

// InventoryReportData catálogo completo más la sección de bajo stock.
type InventoryReportData struct {
	GeneratedAt time.Time
	Products    []*entity.Product
	LowStock    []*entity.Product
}

// MovementsReportData movimientos del rango de fechas solicitado.
type MovementsReportData struct {
	GeneratedAt time.Time
	From        *time.Time
	To          *time.Time
	Movements   []*entity.StockMovementView
}

// UseCase arma los datos de reporte desde la capa de consultas y delega el
// render al Generator.
type UseCase struct {
	queries *query.UseCase
	gen     Generator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(queries *query.UseCase, gen Generator) *UseCase {
	return &UseCase{queries: queries, gen: gen}
}

// GenerateInventoryReport reporte PDF del catálogo con sección de bajo stock.
func (uc *UseCase) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	products, err := uc.queries.SearchProducts(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.queries.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	return uc.gen.InventoryReport(ctx, InventoryReportData{
		GeneratedAt: time.Now(),
		Products:    products,
		LowStock:    lowStock,
	})
}

// GenerateMovementsReport reporte PDF de movimientos en el rango dado.
func (uc *UseCase) GenerateMovementsReport(ctx context.Context, from, to *time.Time) ([]byte, error) {
	movements, err := uc.queries.History(ctx, repository.HistoryFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return uc.gen.MovementsReport(ctx, MovementsReportData{
		GeneratedAt: time.Now(),
		From:        from,
		To:          to,
		Movements:   movements,
	})
}
