package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrNoOp             = errors.New("la operación no produce cambios")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
)

// ValidationError detalla qué campo de la entrada es inválido. Envuelve ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError para el campo indicado.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFound envuelve ErrNotFound con el recurso y la clave buscada.
func NotFound(resource string, key any) error {
	return fmt.Errorf("%s %v: %w", resource, key, ErrNotFound)
}

// IsRetryable indica si repetir la operación podría tener éxito (conflicto o almacén caído).
// El ledger nunca reintenta; la decisión queda del lado del llamador.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrStoreUnavailable)
}

// IsClientError indica errores causados por la entrada del llamador.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoOp)
}
