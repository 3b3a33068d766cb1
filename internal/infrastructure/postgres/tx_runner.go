package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and usecase.UserPurgeRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ usecase.UserPurgeRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. El
// Rollback diferido es inocuo después de un Commit exitoso: todos los caminos
// de salida liberan la transacción.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback según el resultado.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewStockHistoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunUserPurge inicia una transacción con los repos necesarios para el
// borrado en cascada de un usuario (auditoría, historial, usuario).
func (r *TxRunner) RunUserPurge(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	historyRepo repository.StockHistoryRepository,
	auditRepo repository.AuditRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewStockHistoryRepository(tx), NewAuditRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
