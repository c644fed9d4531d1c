package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de almacén (i_movimiento.tipo).
const (
	MovementTypeIssue            = 1 // salida hacia un área solicitante
	MovementTypeWarehouseReceipt = 2 // ingreso al almacén (devolución)
)

// Movement cabecera de una salida o ingreso al almacén.
type Movement struct {
	ID          int64
	Code        int64
	AreaID      int64
	Date        time.Time
	DeliveredBy string
	ReceivedBy  string
	Notes       string
	Type        int
	Total       decimal.Decimal
}

// MovementLine detalle de un movimiento por asignación.
type MovementLine struct {
	ID           int64
	MovementID   int64
	AssignmentID int64
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	Total        decimal.Decimal
}
