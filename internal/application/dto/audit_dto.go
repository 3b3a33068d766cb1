package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AuditEntryResponse entrada de auditoría para respuestas.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   *string   `json:"details,omitempty"`
	IPAddress *string   `json:"ip_address,omitempty"`
}

// FromAuditView mapea la vista unida de auditoría al DTO.
func FromAuditView(e *entity.AuditEntryView) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Username:  e.Username,
		Action:    e.Action,
		Timestamp: e.Timestamp,
		Details:   e.Details,
		IPAddress: e.IPAddress,
	}
}

// FromAuditViews mapea una lista de vistas de auditoría.
func FromAuditViews(list []*entity.AuditEntryView) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromAuditView(e))
	}
	return out
}

// PurgeAuditRequest purga por antigüedad del log de auditoría.
type PurgeAuditRequest struct {
	RetentionDays int `json:"retention_days"`
}

// PurgeAuditResponse resultado de la purga.
type PurgeAuditResponse struct {
	Deleted int64 `json:"deleted"`
}
