package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas). La capa HTTP los traduce a status.
var (
	ErrValidation   = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Error es un error de dominio con un mensaje apto para el cliente.
// Kind es uno de los sentinels de arriba; errors.Is(err, ErrConflict) funciona vía Unwrap.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Errores predefinidos que se comparan por identidad.
var (
	ErrEmailAlreadyExists  = &Error{Kind: ErrConflict, Message: "User with this email already exists"}
	ErrRatingAlreadyExists = &Error{Kind: ErrConflict, Message: "You have already rated this store. Use update instead."}
	ErrInvalidCredentials  = &Error{Kind: ErrUnauthorized, Message: "Invalid email or password"}
)

func NewValidationError(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }

func NewUnauthorizedError(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

func NewForbiddenError(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }

func NewNotFoundError(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

func NewConflictError(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// Message devuelve el mensaje de cliente si err es un *Error; si no, ok=false.
func Message(err error) (string, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Message, true
	}
	return "", false
}
