package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL
// (usable con pool o tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una entrada de auditoría.
func (r *AuditRepo) Create(ctx context.Context, entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, user_id, action, "timestamp", details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Action, entry.Timestamp, entry.Details, entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List devuelve entradas filtradas, de más reciente a más antigua, unidas con
// el username del actor. El filtro de action es LIKE sensible a mayúsculas.
func (r *AuditRepo) List(ctx context.Context, filter repository.AuditFilter) ([]*entity.AuditEntryView, error) {
	query := `
		SELECT a.id, a.user_id, a.action, a."timestamp", a.details, a.ip_address, u.username
		FROM audit_log a
		JOIN users u ON u.id = a.user_id
		WHERE true`
	var args []any
	pos := 1
	if filter.UserID != "" {
		query += fmt.Sprintf(" AND a.user_id = $%d", pos)
		args = append(args, filter.UserID)
		pos++
	}
	if filter.ActionContains != "" {
		query += fmt.Sprintf(" AND a.action LIKE '%%' || $%d || '%%'", pos)
		args = append(args, filter.ActionContains)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(` AND a."timestamp" >= $%d`, pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(` AND a."timestamp" <= $%d`, pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(` ORDER BY a."timestamp" DESC LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditEntryView
	for rows.Next() {
		var v entity.AuditEntryView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Action, &v.Timestamp, &v.Details, &v.IPAddress, &v.Username); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// DeleteOlderThan elimina entradas estrictamente anteriores al corte.
func (r *AuditRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM audit_log WHERE "timestamp" < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge audit entries: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByUser elimina las entradas de un actor (cascada de borrado de
// usuario).
func (r *AuditRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM audit_log WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete audit entries by user: %w", err)
	}
	return cmd.RowsAffected(), nil
}
