package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos
// (protegido). Las escrituras van por el ledger; las lecturas por la capa de
// consultas.
type ProductHandler struct {
	ledgerUC *ledger.UseCase
	queryUC  *query.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(ledgerUC *ledger.UseCase, queryUC *query.UseCase) *ProductHandler {
	return &ProductHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// Create da de alta un producto con stock 0.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y location son requeridos"})
	}
	id, err := h.ledgerUC.CreateProduct(c.Context(), ledger.CreateProductInput{
		OperatorID:    GetUserID(c),
		Name:          in.Name,
		Category:      in.Category,
		Specification: in.Specification,
		Supplier:      in.Supplier,
		Location:      in.Location,
		Barcode:       in.Barcode,
		ImagePath:     in.ImagePath,
		MinStock:      in.MinStock,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de barras ya existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de producto inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.queryUC.GetProduct(c.Context(), id)
	if err != nil || out == nil {
		// El alta ya fue exitosa; con la lectura fallida devolvemos solo el ID.
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(out))
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetProduct(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.FromProduct(out))
}

// Search busca productos con filtros conjuntivos vía query params. Sin
// filtros devuelve el catálogo completo.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Term:             c.Query("term"),
		Category:         c.Query("category"),
		Barcode:          c.Query("barcode"),
		Supplier:         c.Query("supplier"),
		Location:         c.Query("location"),
		OnlyBelowMinimum: c.QueryBool("below_minimum"),
	}
	out, err := h.queryUC.SearchProducts(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromProducts(out))
}

// Update aplica un patch sobre el producto: solo cambian los campos presentes
// en el JSON. El stock nunca se edita por esta vía.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledgerUC.UpdateProduct(c.Context(), GetUserID(c), id, in.ToPatch()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de barras ya existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "patch de producto inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.queryUC.GetProduct(c.Context(), id)
	if err != nil || out == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.FromProduct(out))
}

// Delete elimina el producto y su historial de inventario.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.ledgerUC.DeleteProduct(c.Context(), GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Categories devuelve las categorías distintas del catálogo.
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	out, err := h.queryUC.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Locations devuelve las ubicaciones distintas del catálogo.
func (h *ProductHandler) Locations(c *fiber.Ctx) error {
	out, err := h.queryUC.Locations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
