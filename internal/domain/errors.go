package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrCustomerNotFound   = errors.New("el cliente referenciado no existe")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Fallos de autenticación clasificados por el proveedor de identidad.
// Todo lo que NO sea uno de estos (ej. fallo de infraestructura al consultar
// la DB) se propaga sin convertir: es fatal para el request.
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountDisabled    = errors.New("cuenta inactiva o suspendida")
)

// IsCredentialFailure indica si el error es un fallo de autenticación
// clasificado (corregible por el usuario), a diferencia de un fallo de
// infraestructura.
func IsCredentialFailure(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrAccountDisabled)
}
