package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.QueryRepository = (*QueryRepo)(nil)

const productColumns = `id, name, specification, category, supplier, location, barcode, image_path, stock, min_stock, created_at, updated_at`

// QueryRepo consultas de solo lectura sobre productos e historial. Siempre va
// directo al pool: nunca participa en transacciones de escritura.
type QueryRepo struct {
	pool *pgxpool.Pool
}

// NewQueryRepository construye el adaptador de consultas.
func NewQueryRepository(pool *pgxpool.Pool) *QueryRepo {
	return &QueryRepo{pool: pool}
}

// GetProduct obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *QueryRepo) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Specification, &p.Category, &p.Supplier, &p.Location,
			&p.Barcode, &p.ImagePath, &p.Stock, &p.MinStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// SearchProducts búsqueda con filtros conjuntivos. Term aplica como substring
// sobre nombre O especificación; Supplier como substring; Category, Barcode y
// Location como igualdad exacta.
func (r *QueryRepo) SearchProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE true`
	var args []any
	pos := 1
	if filter.Term != "" {
		query += fmt.Sprintf(" AND (name LIKE '%%' || $%d || '%%' OR specification LIKE '%%' || $%d || '%%')", pos, pos)
		args = append(args, filter.Term)
		pos++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, filter.Category)
		pos++
	}
	if filter.Barcode != "" {
		query += fmt.Sprintf(" AND barcode = $%d", pos)
		args = append(args, filter.Barcode)
		pos++
	}
	if filter.Supplier != "" {
		query += fmt.Sprintf(" AND supplier LIKE '%%' || $%d || '%%'", pos)
		args = append(args, filter.Supplier)
		pos++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND location = $%d", pos)
		args = append(args, filter.Location)
		pos++
	}
	if filter.OnlyBelowMinimum {
		query += " AND stock <= min_stock"
	}
	query += " ORDER BY name"

	return r.scanProducts(ctx, query, args...)
}

// LowStockProducts productos con stock en o por debajo de su mínimo.
func (r *QueryRepo) LowStockProducts(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock <= min_stock ORDER BY name`
	return r.scanProducts(ctx, query)
}

func (r *QueryRepo) scanProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Specification, &p.Category, &p.Supplier, &p.Location,
			&p.Barcode, &p.ImagePath, &p.Stock, &p.MinStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// History movimientos de más reciente a más antiguo, unidos con nombre de
// producto y username del operador.
func (r *QueryRepo) History(ctx context.Context, filter repository.HistoryFilter) ([]*entity.StockMovementView, error) {
	query := `
		SELECT h.id, h.product_id, h.change_amount, h.operation_type, h.operator_id, h.operation_time, h.notes,
		       p.name, u.username
		FROM inventory_history h
		JOIN products p ON p.id = h.product_id
		JOIN users u ON u.id = h.operator_id
		WHERE true`
	var args []any
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND h.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.OperatorID != "" {
		query += fmt.Sprintf(" AND h.operator_id = $%d", pos)
		args = append(args, filter.OperatorID)
		pos++
	}
	if filter.Direction != "" {
		query += fmt.Sprintf(" AND h.operation_type = $%d", pos)
		args = append(args, string(filter.Direction))
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND h.operation_time >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND h.operation_time <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY h.operation_time DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovementView
	for rows.Next() {
		var v entity.StockMovementView
		var direction string
		if err := rows.Scan(&v.ID, &v.ProductID, &v.ChangeAmount, &direction, &v.OperatorID,
			&v.OperationTime, &v.Notes, &v.ProductName, &v.OperatorName); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		v.Direction = entity.Direction(direction)
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Categories categorías distintas no vacías.
func (r *QueryRepo) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
}

// Locations ubicaciones distintas no vacías.
func (r *QueryRepo) Locations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT location FROM products WHERE location <> '' ORDER BY location`)
}

func (r *QueryRepo) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
