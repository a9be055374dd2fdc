package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("resource already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict with current state")
	// ErrUpstream agrupa fallos del proveedor LLM; se envuelve con el texto del
	// proveedor vía fmt.Errorf("%w: ...") para que llegue al cliente HTTP.
	ErrUpstream = errors.New("upstream provider error")
)
