// Package pdf genera los reportes PDF de inventario y movimientos usando
// Maroto v2. Es el único lugar del repositorio que conoce la librería de
// render: la capa de consultas entrega datos y nada más.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

const dateLayout = "2006-01-02 15:04"

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ report.Generator = (*MarotoReportGenerator)(nil)

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// InventoryReport genera el PDF del catálogo con la sección de bajo stock.
func (g *MarotoReportGenerator) InventoryReport(_ context.Context, data report.InventoryReportData) ([]byte, error) {
	m := newDocument("Reporte de inventario")

	m.AddRows(titleRow("Reporte de inventario", data.GeneratedAt.Format(dateLayout)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(productTableHeader())
	for _, p := range data.Products {
		m.AddRows(productTableRow(p, nil))
	}
	m.AddRows(summaryRow(fmt.Sprintf("Total de productos: %d", len(data.Products))))

	if len(data.LowStock) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow(fmt.Sprintf("Productos en o bajo stock mínimo (%d)", len(data.LowStock))))
		m.AddRows(productTableHeader())
		for _, p := range data.LowStock {
			m.AddRows(productTableRow(p, colorAlert))
		}
	}

	return generate(m)
}

// MovementsReport genera el PDF de movimientos del rango solicitado.
func (g *MarotoReportGenerator) MovementsReport(_ context.Context, data report.MovementsReportData) ([]byte, error) {
	m := newDocument("Reporte de movimientos")

	subtitle := data.GeneratedAt.Format(dateLayout)
	if data.From != nil || data.To != nil {
		subtitle += " | rango: " + rangeLabel(data)
	}
	m.AddRows(titleRow("Reporte de movimientos", subtitle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(movementTableHeader())
	for _, mv := range data.Movements {
		m.AddRows(movementTableRow(mv))
	}
	m.AddRows(summaryRow(fmt.Sprintf("Total de movimientos: %d", len(data.Movements))))

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func rangeLabel(data report.MovementsReportData) string {
	from, to := "inicio", "hoy"
	if data.From != nil {
		from = data.From.Format("2006-01-02")
	}
	if data.To != nil {
		to = data.To.Format("2006-01-02")
	}
	return from + " a " + to
}

func titleRow(title, subtitle string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
		),
		col.New(4).Add(
			text.New(subtitle, props.Text{Size: 8, Align: align.Right, Color: colorGray}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(label, props.Text{Size: 11, Style: fontstyle.Bold, Color: colorAlert}),
		),
	)
}

func summaryRow(label string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(label, props.Text{Size: 8, Align: align.Right, Color: colorGray}),
		),
	)
}

func productTableHeader() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(6).Add(
		text.NewCol(3, "Nombre", header),
		text.NewCol(2, "Categoría", header),
		text.NewCol(2, "Ubicación", header),
		text.NewCol(1, "Stock", headerRight(header)),
		text.NewCol(1, "Mínimo", headerRight(header)),
		text.NewCol(3, "Proveedor", header),
	)
}

func productTableRow(p *entity.Product, color *props.Color) core.Row {
	cell := props.Text{Size: 8}
	if color != nil {
		cell.Color = color
	}
	return row.New(5).Add(
		text.NewCol(3, p.Name, cell),
		text.NewCol(2, p.Category, cell),
		text.NewCol(2, p.Location, cell),
		text.NewCol(1, fmt.Sprintf("%d", p.Stock), cellRight(cell)),
		text.NewCol(1, fmt.Sprintf("%d", p.MinStock), cellRight(cell)),
		text.NewCol(3, p.Supplier, cell),
	)
}

func movementTableHeader() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(6).Add(
		text.NewCol(2, "Fecha", header),
		text.NewCol(3, "Producto", header),
		text.NewCol(1, "Tipo", header),
		text.NewCol(1, "Cantidad", headerRight(header)),
		text.NewCol(2, "Operador", header),
		text.NewCol(3, "Notas", header),
	)
}

func movementTableRow(m *entity.StockMovementView) core.Row {
	cell := props.Text{Size: 8}
	kind := "entrada"
	if m.Direction == entity.DirectionOut {
		kind = "salida"
	}
	notes := ""
	if m.Notes != nil {
		notes = *m.Notes
	}
	return row.New(5).Add(
		text.NewCol(2, m.OperationTime.Format(dateLayout), cell),
		text.NewCol(3, m.ProductName, cell),
		text.NewCol(1, kind, cell),
		text.NewCol(1, fmt.Sprintf("%d", m.ChangeAmount), cellRight(cell)),
		text.NewCol(2, m.OperatorName, cell),
		text.NewCol(3, notes, cell),
	)
}

func headerRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

func cellRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
