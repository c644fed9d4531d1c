package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrAlreadyVoided = errors.New("el ingreso ya ha sido anulado")
	ErrWrittenOff    = errors.New("el producto está dado de baja y no permite movimientos")
	ErrNotFixedAsset = errors.New("solo los productos de tipo Activo Fijo pueden darse de baja")
)
