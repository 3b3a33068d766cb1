package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL
// (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Username duplicado devuelve ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, user.ID, user.Username, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.get(ctx, `SELECT id, username, password, role, created_at FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no
// existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.get(ctx, `SELECT id, username, password, role, created_at FROM users WHERE username = $1`, username)
}

func (r *UserRepo) get(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza username, credencial y rol.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET username = $2, password = $3, role = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, user.ID, user.Username, user.PasswordHash, user.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario por ID. Devuelve ErrNotFound si no había fila.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los usuarios ordenados por username.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT id, username, password, role, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
