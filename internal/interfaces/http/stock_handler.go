package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockHandler maneja movimientos de inventario e historial (protegido).
type StockHandler struct {
	ledgerUC *ledger.UseCase
	queryUC  *query.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledgerUC *ledger.UseCase, queryUC *query.UseCase) *StockHandler {
	return &StockHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// RegisterMovement aplica un delta de stock firmado. Una salida que dejaría el
// stock negativo se rechaza con 409 y no deja historial.
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	direction, err := entity.ParseDirection(in.Direction)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direction debe ser 'in' o 'out'"})
	}
	if in.ProductID == "" || in.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y amount > 0 son requeridos"})
	}
	err = h.ledgerUC.ApplyStockChange(c.Context(), ledger.StockChangeInput{
		ProductID:  in.ProductID,
		Amount:     in.Amount,
		Direction:  direction,
		OperatorID: GetUserID(c),
		Notes:      in.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// History devuelve movimientos filtrados, de más reciente a más antiguo.
// Fechas en query params from/to con formato RFC 3339 o YYYY-MM-DD.
func (h *StockHandler) History(c *fiber.Ctx) error {
	filter := repository.HistoryFilter{
		ProductID:  c.Query("product_id"),
		OperatorID: c.Query("operator_id"),
	}
	if d := c.Query("direction"); d != "" {
		direction, err := entity.ParseDirection(d)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direction debe ser 'in' o 'out'"})
		}
		filter.Direction = direction
	}
	var err error
	if filter.From, err = parseTimeParam(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	if filter.To, err = parseTimeParam(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}
	out, err := h.queryUC.History(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromMovementViews(out))
}

// LowStock devuelve los productos en o por debajo de su stock mínimo.
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.queryUC.LowStockProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromProducts(out))
}

// parseTimeParam acepta RFC 3339 o solo fecha (YYYY-MM-DD). Vacío es nil.
func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
