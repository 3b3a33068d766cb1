package entity

import "time"

// AuditEntry registro append-only de "quién hizo qué y cuándo", independiente
// del ciclo de vida de las entidades de negocio. Action es texto libre
// descriptivo, no un enum. La única operación destructiva soportada sobre la
// tabla es la purga por antigüedad.
type AuditEntry struct {
	ID        string
	UserID    string
	Action    string
	Timestamp time.Time
	Details   *string
	IPAddress *string
}

// AuditEntryView entrada unida con el username del actor para consultas.
type AuditEntryView struct {
	AuditEntry
	Username string
}
