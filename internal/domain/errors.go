package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada operación los devuelve tal cual; la capa GraphQL los traduce a códigos.
var (
	ErrUnauthenticated   = errors.New("no autenticado")
	ErrInvalidToken      = errors.New("token inválido o expirado")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrForbidden         = errors.New("no tienes las credenciales para verlo")
	ErrAlreadyExists     = errors.New("el recurso ya está registrado")
	ErrUserNotRegistered = errors.New("el usuario no está registrado")
	ErrIncorrectPassword = errors.New("el password es incorrecto")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
)
