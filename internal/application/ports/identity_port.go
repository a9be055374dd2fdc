package ports

import "context"

// Identity identidad verificada del usuario autenticado, tal como la entrega el
// proveedor externo de identidad.
type Identity struct {
	ID    string
	Email string
}

// IdentityService puerto hacia el colaborador de verificación de identidad.
type IdentityService interface {
	// VerifyToken valida un bearer token y devuelve la identidad. Cualquier fallo
	// (token inválido, proveedor inaccesible) invalida el request completo.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
	// DeleteUser elimina el registro de identidad en el proveedor. Best-effort:
	// el caller registra el fallo y continúa.
	DeleteUser(ctx context.Context, userID string) error
}
