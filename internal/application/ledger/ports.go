package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que stock e historial se persisten
// juntos o no se persiste ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		historyRepo repository.StockHistoryRepository,
	) error) error
}

// AuditRecorder registra una entrada de auditoría. Las mutaciones del ledger
// lo invocan best-effort después del commit: un fallo aquí nunca revierte ni
// falla la operación principal.
type AuditRecorder interface {
	Record(ctx context.Context, userID, action string, details, ipAddress *string) (string, error)
}
