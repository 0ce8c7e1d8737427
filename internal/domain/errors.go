package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSlotOccupied       = errors.New("la ubicación ya está ocupada por otro producto")
	ErrProductSlotted     = errors.New("el producto ya ocupa otra ubicación")
	ErrSlotInUse          = errors.New("la ubicación tiene movimientos registrados")
	ErrCapacityBelowUsage = errors.New("la capacidad no puede ser menor al stock ingresado")
	ErrInvalidTransition  = errors.New("transición de estado de envío no permitida")
)
