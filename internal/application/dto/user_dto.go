package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CreateUserRequest alta de usuario.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | bodeguero | vendedor
}

// UpdateUserRequest patch de usuario: solo los campos presentes se aplican.
// Password, si viene, se vuelve a hashear.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// FromUser mapea la entidad al DTO sin exponer el hash.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role, CreatedAt: u.CreatedAt}
}

// FromUsers mapea una lista de usuarios.
func FromUsers(list []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
