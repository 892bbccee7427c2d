package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-api/internal/application/auth"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProvider struct {
	user *entity.User
	err  error
}

func (f *fakeProvider) Authenticate(email, password string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	created []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "facturas-api"}

func newAuthUC(p *fakeProvider, users *fakeUserRepo) *auth.AuthUseCase {
	if users == nil {
		users = &fakeUserRepo{byEmail: map[string]*entity.User{}}
	}
	return auth.NewAuthUseCase(p, users, testJWT)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login: taxonomía de fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthUC(&fakeProvider{err: domain.ErrInvalidCredentials}, nil)

	_, err := uc.Login(dto.LoginRequest{Email: "user@example.com", Password: "mala"})

	var aerr *auth.AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, auth.MsgInvalidCredentials, aerr.Message)
}

func TestLogin_CuentaDeshabilitada_MensajeGenerico(t *testing.T) {
	uc := newAuthUC(&fakeProvider{err: domain.ErrAccountDisabled}, nil)

	_, err := uc.Login(dto.LoginRequest{Email: "user@example.com", Password: "ok"})

	var aerr *auth.AuthError
	require.ErrorAs(t, err, &aerr)
	// Clasificado pero no de credenciales: mensaje genérico, sin filtrar detalle
	assert.Equal(t, auth.MsgAuthFailure, aerr.Message)
}

func TestLogin_FalloDeInfraSePropagaTalCual(t *testing.T) {
	infraErr := errors.New("identity: buscar usuario: connection refused")
	uc := newAuthUC(&fakeProvider{err: infraErr}, nil)

	_, err := uc.Login(dto.LoginRequest{Email: "user@example.com", Password: "ok"})

	// Un fallo no clasificado nunca se disfraza de fallo de login
	var aerr *auth.AuthError
	assert.False(t, errors.As(err, &aerr))
	assert.ErrorIs(t, err, infraErr)
}

func TestLogin_ExitoGeneraToken(t *testing.T) {
	user := &entity.User{
		ID:     "u-1",
		Email:  "admin@example.com",
		Name:   "Admin",
		Role:   entity.RoleAdmin,
		Status: "active",
	}
	uc := newAuthUC(&fakeProvider{user: user}, nil)

	resp, err := uc.Login(dto.LoginRequest{Email: user.Email, Password: "changeme123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	uc := newAuthUC(&fakeProvider{}, users)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "nuevo@example.com",
		Password: "supersecreto",
	})
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	created := users.created[0]
	assert.NotEqual(t, "supersecreto", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supersecreto")))
	assert.Equal(t, entity.RoleViewer, created.Role)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, entity.RoleViewer, resp.Role)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ya@example.com": {ID: "u-9", Email: "ya@example.com"},
	}}
	uc := newAuthUC(&fakeProvider{}, users)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ya@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
