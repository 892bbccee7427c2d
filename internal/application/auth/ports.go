package auth

import "github.com/jhoicas/Facturas-api/internal/domain/entity"

// IdentityProvider delega la verificación de credenciales al proveedor de
// identidad. Taxonomía de fallos: domain.ErrInvalidCredentials y
// domain.ErrAccountDisabled son fallos clasificados (corregibles por el
// usuario); cualquier otro error es de infraestructura y el caller debe
// propagarlo sin convertir.
type IdentityProvider interface {
	Authenticate(email, password string) (*entity.User, error)
}
