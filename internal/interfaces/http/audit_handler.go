package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AuditHandler consulta y purga del log de auditoría (solo admin).
type AuditHandler struct {
	uc               *audit.UseCase
	defaultRetention int // días, cuando la purga no trae retention_days
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.UseCase, defaultRetentionDays int) *AuditHandler {
	return &AuditHandler{uc: uc, defaultRetention: defaultRetentionDays}
}

// List devuelve entradas de auditoría filtradas, de más reciente a más
// antigua. Filtros: user_id, action (substring), from, to, limit, offset.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	filter := repository.AuditFilter{
		UserID:         c.Query("user_id"),
		ActionContains: c.Query("action"),
		Limit:          c.QueryInt("limit", 0),
		Offset:         c.QueryInt("offset", 0),
	}
	var err error
	if filter.From, err = parseTimeParam(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	if filter.To, err = parseTimeParam(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}
	out, err := h.uc.Query(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromAuditViews(out))
}

// Purge elimina de forma irreversible las entradas más antiguas que la
// retención. Sin retention_days en el cuerpo usa la retención configurada.
func (h *AuditHandler) Purge(c *fiber.Ctx) error {
	in := dto.PurgeAuditRequest{RetentionDays: h.defaultRetention}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	retention := time.Duration(in.RetentionDays) * 24 * time.Hour
	deleted, err := h.uc.PurgeOlderThan(c.Context(), retention)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "retention_days no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PurgeAuditResponse{Deleted: deleted})
}
