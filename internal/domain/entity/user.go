package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// ValidRole indica si el rol pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBodeguero, RoleVendedor:
		return true
	}
	return false
}

// User usuario del sistema. El núcleo de inventario solo lo referencia como
// operador/actor (FK desde historial y auditoría); la validación de
// credenciales vive en el caso de uso de auth.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string
	CreatedAt    time.Time
}
