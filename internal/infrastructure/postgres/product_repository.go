package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Barcode duplicado devuelve ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, specification, category, supplier, location, barcode, image_path, stock, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Specification, product.Category,
		product.Supplier, product.Location, product.Barcode, product.ImagePath,
		product.Stock, product.MinStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, specification, category, supplier, location, barcode, image_path, stock, min_stock, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Specification, &p.Category, &p.Supplier, &p.Location,
		&p.Barcode, &p.ImagePath, &p.Stock, &p.MinStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos editables del producto. No toca stock: el stock
// se mueve únicamente vía AdjustStock.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, specification = $3, category = $4, supplier = $5, location = $6, barcode = $7, image_path = $8, min_stock = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Specification, product.Category,
		product.Supplier, product.Location, product.Barcode, product.ImagePath,
		product.MinStock, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock suma delta al stock y devuelve el valor resultante leído en la
// misma sentencia (RETURNING): el chequeo de negativo del caso de uso ocurre
// sobre el valor post-update dentro de la transacción, no sobre una lectura
// separada. El CHECK (stock >= 0) de la tabla actúa de respaldo y se mapea
// al mismo error de dominio.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID string, delta int) (int, error) {
	var stock int
	err := r.q.QueryRow(ctx,
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1 RETURNING stock`,
		productID, delta,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return stock, nil
}

// Delete elimina un producto por ID. Devuelve ErrNotFound si no había fila.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
