package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Get* devuelve (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete devuelve domain.ErrNotFound si no había fila que borrar.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.User, error)
}
