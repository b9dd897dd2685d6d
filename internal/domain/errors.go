package domain

import "errors"

// Errores de dominio (sin dependencias externas). El gateway HTTP los traduce
// a códigos de estado y mensajes visibles para el cliente.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrOrderNotFound      = errors.New("orden no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrMissingFields      = errors.New("faltan campos requeridos")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser mayor a cero")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrOrderCompleted     = errors.New("la orden ya fue completada")
	ErrOrderCancelled     = errors.New("la orden ya fue cancelada")
)
