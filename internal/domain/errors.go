package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los repositorios y casos de
// uso los devuelven como resultado tipado; la capa HTTP los traduce a códigos.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
