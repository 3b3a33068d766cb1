package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserPurgeRunner ejecuta el borrado en cascada de un usuario en una sola
// transacción: primero sus filas de auditoría e historial, después el
// usuario. El orden de la cascada vive aquí, nunca en el caller.
type UserPurgeRunner interface {
	RunUserPurge(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		historyRepo repository.StockHistoryRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// UserUseCase administración de cuentas de usuario. El núcleo del ledger solo
// referencia usuarios como operadores; estas operaciones son la superficie de
// administración que el original exponía aparte.
type UserUseCase struct {
	userRepo repository.UserRepository
	purger   UserPurgeRunner
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, purger UserPurgeRunner) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, purger: purger}
}

// Create da de alta un usuario con el password hasheado con bcrypt.
// Username duplicado devuelve domain.ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// Update aplica un patch sobre el usuario; el password, si viene, se vuelve a
// hashear antes de persistir.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if in.Username == nil && in.Password == nil && in.Role == nil {
		return domain.ErrInvalidInput
	}
	if in.Role != nil && !entity.ValidRole(*in.Role) {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if in.Username != nil {
		if *in.Username == "" {
			return domain.ErrInvalidInput
		}
		user.Username = *in.Username
	}
	if in.Password != nil {
		if *in.Password == "" {
			return domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	return uc.userRepo.Update(ctx, user)
}

// Delete elimina el usuario y, por política, sus filas de auditoría e
// historial, todo en una transacción: no queda cascada parcial observable.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.purger.RunUserPurge(ctx, func(
		userRepo repository.UserRepository,
		historyRepo repository.StockHistoryRepository,
		auditRepo repository.AuditRepository,
	) error {
		if _, err := auditRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if _, err := historyRepo.DeleteByOperator(ctx, id); err != nil {
			return err
		}
		return userRepo.Delete(ctx, id)
	})
}

// GetByID obtiene un usuario; domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// List devuelve todos los usuarios sin credenciales.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}
