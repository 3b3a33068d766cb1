package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/report"
)

// ReportHandler descarga de reportes PDF (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory devuelve el reporte PDF del catálogo con la sección de bajo stock.
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerateInventoryReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}

// Movements devuelve el reporte PDF de movimientos del rango from/to.
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}
	pdf, err := h.uc.GenerateMovementsReport(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(pdf)
}
