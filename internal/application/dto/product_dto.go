package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CreateProductRequest alta de producto. Nombre y ubicación obligatorios.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Specification string  `json:"specification"`
	Supplier      string  `json:"supplier"`
	Location      string  `json:"location"`
	Barcode       *string `json:"barcode"`
	ImagePath     *string `json:"image_path"`
	MinStock      *int    `json:"min_stock"`
}

// UpdateProductRequest patch de producto: solo los campos presentes en el
// JSON se aplican; el resto conserva su valor.
type UpdateProductRequest struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Specification *string `json:"specification"`
	Supplier      *string `json:"supplier"`
	Location      *string `json:"location"`
	Barcode       *string `json:"barcode"`
	ImagePath     *string `json:"image_path"`
	MinStock      *int    `json:"min_stock"`
}

// ToPatch convierte el request al patch tipado del dominio.
func (r UpdateProductRequest) ToPatch() entity.ProductPatch {
	return entity.ProductPatch{
		Name:          r.Name,
		Category:      r.Category,
		Specification: r.Specification,
		Supplier:      r.Supplier,
		Location:      r.Location,
		Barcode:       r.Barcode,
		ImagePath:     r.ImagePath,
		MinStock:      r.MinStock,
	}
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Specification string    `json:"specification"`
	Supplier      string    `json:"supplier"`
	Location      string    `json:"location"`
	Barcode       *string   `json:"barcode,omitempty"`
	ImagePath     *string   `json:"image_path,omitempty"`
	Stock         int       `json:"stock"`
	MinStock      int       `json:"min_stock"`
	BelowMinimum  bool      `json:"below_minimum"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromProduct mapea la entidad al DTO de respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Specification: p.Specification,
		Supplier:      p.Supplier,
		Location:      p.Location,
		Barcode:       p.Barcode,
		ImagePath:     p.ImagePath,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		BelowMinimum:  p.BelowMinimum(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromProducts mapea una lista de entidades.
func FromProducts(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}
