package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/jwt"
)

// Mensajes al usuario para fallos de autenticación clasificados.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgAuthFailure        = "Something went wrong."
)

// AuthError fallo de autenticación clasificado por el proveedor: se
// re-presenta el login con Message. Los fallos NO clasificados nunca se
// envuelven en este tipo.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	provider IdentityProvider
	users    repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(provider IdentityProvider, users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{provider: provider, users: users, jwtCfg: jwtCfg}
}

// Login delega la verificación al proveedor de identidad y mapea su
// taxonomía de fallos:
//   - credenciales inválidas        → AuthError "Invalid credentials."
//   - otro fallo clasificado        → AuthError "Something went wrong."
//   - fallo NO clasificado (infra)  → se propaga tal cual, fatal para el request
//
// En el éxito genera el JWT de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.provider.Authenticate(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, &AuthError{Message: MsgInvalidCredentials, Err: err}
		}
		if domain.IsCredentialFailure(err) {
			return nil, &AuthError{Message: MsgAuthFailure, Err: err}
		}
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// RegisterUser crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleViewer
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
