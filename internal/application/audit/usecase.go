package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// DefaultQueryLimit tope de filas cuando el caller no pagina.
const DefaultQueryLimit = 100

// UseCase registro durable de acciones de actores, desacoplado del ciclo de
// vida de las entidades de negocio.
type UseCase struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso de auditoría.
func NewUseCase(repo repository.AuditRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Record persiste una entrada y devuelve su ID. Action es texto libre.
// Los callers de mutaciones tratan un error aquí como soft: lo loguean y
// continúan (disponibilidad de la operación principal sobre completitud del
// log de auditoría).
func (uc *UseCase) Record(ctx context.Context, userID, action string, details, ipAddress *string) (string, error) {
	if userID == "" || action == "" {
		return "", domain.ErrInvalidInput
	}
	entry := &entity.AuditEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now(),
		Details:   details,
		IPAddress: ipAddress,
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("registrar auditoría: %w", err)
	}
	return entry.ID, nil
}

// Query devuelve entradas filtradas, de más reciente a más antigua.
func (uc *UseCase) Query(ctx context.Context, filter repository.AuditFilter) ([]*entity.AuditEntryView, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.repo.List(ctx, filter)
}

// PurgeOlderThan elimina de forma irreversible las entradas con timestamp
// estrictamente anterior a now − retention. Devuelve cuántas borró.
func (uc *UseCase) PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	if retention < 0 {
		return 0, domain.ErrInvalidInput
	}
	cutoff := time.Now().Add(-retention)
	deleted, err := uc.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("purga del log de auditoría")
	return deleted, nil
}
