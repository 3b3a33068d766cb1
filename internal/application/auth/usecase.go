package auth

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación: valida credenciales y emite el par (user_id, role)
// como JWT. El núcleo de inventario nunca toca credenciales; consume ese par
// ya validado.
type UseCase struct {
	userRepo repository.UserRepository
	audit    ledger.AuditRecorder
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, audit ledger.AuditRecorder, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, audit: audit, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password (bcrypt), genera el JWT y registra el
// inicio de sesión en auditoría best-effort con la IP de origen.
// Credenciales inválidas devuelven siempre domain.ErrUnauthorized, sin
// distinguir usuario inexistente de contraseña errada.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	var ipAddr *string
	if ip != "" {
		ipAddr = &ip
	}
	if _, err := uc.audit.Record(ctx, user.ID, "inicio de sesión", nil, ipAddr); err != nil {
		uc.log.Warn().Err(err).Str("user", user.Username).Msg("registro de auditoría falló")
	}

	return &dto.LoginResponse{Token: token, User: dto.FromUser(user)}, nil
}
