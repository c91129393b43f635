package graphql

import (
	"errors"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// Códigos expuestos en extensions.code de cada error GraphQL.
const (
	codeUnauthenticated   = "UNAUTHENTICATED"
	codeInvalidToken      = "INVALID_TOKEN"
	codeNotFound          = "NOT_FOUND"
	codeForbidden         = "FORBIDDEN"
	codeAlreadyExists     = "ALREADY_EXISTS"
	codeInsufficientStock = "INSUFFICIENT_STOCK"
	codeBadUserInput      = "BAD_USER_INPUT"
	codeInternal          = "INTERNAL"
)

// resolverError implementa la interfaz ResolverError de graphql-go:
// el mensaje viaja como message y el código como extensions.code.
type resolverError struct {
	err  error
	code string
}

func (e *resolverError) Error() string { return e.err.Error() }
func (e *resolverError) Unwrap() error { return e.err }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// gqlError traduce un error de dominio a un error GraphQL con código.
// Los fallos del almacén (ya envueltos con %w) salen como INTERNAL.
func gqlError(err error) error {
	if err == nil {
		return nil
	}
	return &resolverError{err: err, code: codeFor(err)}
}

// validationError reporta violaciones de validación de entrada como BAD_USER_INPUT.
func validationError(fields map[string]string) error {
	msg := "entrada inválida"
	for field, detail := range fields {
		msg += "; " + field + " " + detail
	}
	return &resolverError{err: errors.New(msg), code: codeBadUserInput}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return codeUnauthenticated
	case errors.Is(err, domain.ErrInvalidToken):
		return codeInvalidToken
	case errors.Is(err, domain.ErrNotFound):
		return codeNotFound
	case errors.Is(err, domain.ErrForbidden):
		return codeForbidden
	case errors.Is(err, domain.ErrAlreadyExists):
		return codeAlreadyExists
	case errors.Is(err, domain.ErrInsufficientStock):
		return codeInsufficientStock
	case errors.Is(err, domain.ErrUserNotRegistered),
		errors.Is(err, domain.ErrIncorrectPassword),
		errors.Is(err, domain.ErrInvalidInput):
		return codeBadUserInput
	default:
		return codeInternal
	}
}
