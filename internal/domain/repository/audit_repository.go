package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AuditFilter filtros opcionales para consultar el log de auditoría.
// ActionContains es un "contains" sensible a mayúsculas sobre action.
type AuditFilter struct {
	UserID         string
	ActionContains string
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// AuditRepository define el puerto de persistencia del log de auditoría.
type AuditRepository interface {
	Create(ctx context.Context, entry *entity.AuditEntry) error
	// List devuelve entradas de más reciente a más antigua, unidas con el
	// username del actor.
	List(ctx context.Context, filter AuditFilter) ([]*entity.AuditEntryView, error)
	// DeleteOlderThan elimina las entradas con timestamp estrictamente
	// anterior al corte y devuelve cuántas borró.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
