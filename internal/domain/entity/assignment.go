package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de movimiento de una asignación (relevantes para activos fijos).
const (
	MovementStateInWarehouse = 0 // en almacén (consumibles siempre aquí)
	MovementStateReturned    = 1 // reingresó al almacén
	MovementStateOut         = 2 // fuera de almacén
)

// Assignment es la asignación de un producto a un área (i_asignaciones_productos).
// Es la unidad sobre la que se lleva el kardex. Stock y TotalCost los mantienen
// las operaciones de registro (ingresos, salidas, anulaciones) dentro de transacciones.
type Assignment struct {
	ID            int64
	ProductID     int64
	AreaID        int64
	Code          string
	Stock         decimal.Decimal
	TotalCost     decimal.Decimal
	AssignedAt    *time.Time
	WrittenOff    bool
	MovementState int
}

// AssignmentDetail asignación con su producto y área ya resueltos (cabecera del kardex).
type AssignmentDetail struct {
	Assignment
	Product Product
	Area    Area
}

// WriteOff registro de baja de una asignación (i_bajas_productos).
type WriteOff struct {
	ID           int64
	AssignmentID int64
	Date         time.Time
	Reason       string
	UserID       string
}
