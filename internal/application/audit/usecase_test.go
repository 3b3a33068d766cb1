package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de auditoría
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuditRepo struct {
	entries    []*entity.AuditEntry
	lastFilter repository.AuditFilter
}

func (r *fakeAuditRepo) Create(_ context.Context, e *entity.AuditEntry) error {
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, filter repository.AuditFilter) ([]*entity.AuditEntryView, error) {
	r.lastFilter = filter
	var out []*entity.AuditEntryView
	for _, e := range r.entries {
		out = append(out, &entity.AuditEntryView{AuditEntry: *e, Username: "tester"})
	}
	return out, nil
}

func (r *fakeAuditRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []*entity.AuditEntry
	var deleted int64
	for _, e := range r.entries {
		if e.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return deleted, nil
}

func (r *fakeAuditRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var kept []*entity.AuditEntry
	var deleted int64
	for _, e := range r.entries {
		if e.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return deleted, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record / Query
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_PersisteConIDYTimestamp(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := audit.NewUseCase(repo, logger.Nop())

	details := "nombre: a → b"
	id, err := uc.Record(context.Background(), "user-1", "actualización de producto p-1", &details, nil)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, repo.entries, 1)
	e := repo.entries[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "user-1", e.UserID)
	assert.Equal(t, "actualización de producto p-1", e.Action)
	assert.WithinDuration(t, time.Now(), e.Timestamp, time.Second)
	require.NotNil(t, e.Details)
	assert.Equal(t, details, *e.Details)
}

func TestRecord_RequiereActorYAccion(t *testing.T) {
	uc := audit.NewUseCase(&fakeAuditRepo{}, logger.Nop())
	ctx := context.Background()

	_, err := uc.Record(ctx, "", "acción", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(ctx, "user-1", "", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuery_AplicaLimiteYOffsetPorDefecto(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := audit.NewUseCase(repo, logger.Nop())

	_, err := uc.Query(context.Background(), repository.AuditFilter{Limit: 0, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, audit.DefaultQueryLimit, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PurgeOlderThan
// ──────────────────────────────────────────────────────────────────────────────

// Retención de 30 días: una entrada de hace 40 días cae, una de ayer sobrevive.
func TestPurgeOlderThan_RespetaElCorte(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := audit.NewUseCase(repo, logger.Nop())
	ctx := context.Background()

	now := time.Now()
	repo.entries = []*entity.AuditEntry{
		{ID: "vieja", UserID: "u", Action: "a", Timestamp: now.AddDate(0, 0, -40)},
		{ID: "reciente", UserID: "u", Action: "a", Timestamp: now.AddDate(0, 0, -1)},
	}

	deleted, err := uc.PurgeOlderThan(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "reciente", repo.entries[0].ID)
}

func TestPurgeOlderThan_RetencionNegativaEsInvalida(t *testing.T) {
	uc := audit.NewUseCase(&fakeAuditRepo{}, logger.Nop())

	_, err := uc.PurgeOlderThan(context.Background(), -time.Hour)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurgeOlderThan_SinEntradasViejas(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := audit.NewUseCase(repo, logger.Nop())

	repo.entries = []*entity.AuditEntry{
		{ID: "reciente", UserID: "u", Action: "a", Timestamp: time.Now()},
	}
	deleted, err := uc.PurgeOlderThan(context.Background(), 365*24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Len(t, repo.entries, 1)
}
