// Package identity implementa el proveedor de identidad local: verifica
// credenciales contra la tabla de usuarios con bcrypt y clasifica los fallos
// según la taxonomía de domain.
package identity

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-api/internal/application/auth"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ auth.IdentityProvider = (*Provider)(nil)

// Provider verifica credenciales contra UserRepository.
type Provider struct {
	users repository.UserRepository
	log   zerolog.Logger
}

// NewProvider construye el proveedor.
func NewProvider(users repository.UserRepository, log zerolog.Logger) *Provider {
	return &Provider{users: users, log: log}
}

// Authenticate clasifica los fallos:
//   - email desconocido o password incorrecto → domain.ErrInvalidCredentials
//   - cuenta no activa                        → domain.ErrAccountDisabled
//   - fallo al consultar la DB                → error envuelto, SIN clasificar
func (p *Provider) Authenticate(email, password string) (*entity.User, error) {
	user, err := p.users.FindByEmail(email)
	if err != nil {
		// Infraestructura: no es un fallo de credenciales
		return nil, fmt.Errorf("identity: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.log.Debug().Str("email", email).Msg("password incorrecto")
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != "active" {
		return nil, domain.ErrAccountDisabled
	}
	return user, nil
}
