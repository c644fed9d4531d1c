package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una nota de ingreso.
const (
	ReceiptStatusVoided = 0
	ReceiptStatusActive = 1
)

// Receipt nota de ingreso de proveedor (i_ingresos).
type Receipt struct {
	ID            int64
	Number        int64
	SupplierID    int64
	InvoiceNumber *string
	InvoiceDate   *time.Time
	ReceivedAt    time.Time
	ReceivedBy    string
	DeliveredBy   string
	Amount        decimal.Decimal
	Notes         string
	Status        int
}

// IsActive indica si el ingreso no fue anulado.
func (r *Receipt) IsActive() bool { return r.Status == ReceiptStatusActive }

// ReceiptLine detalle de un ingreso. Cost es el costo total de la línea, no unitario.
type ReceiptLine struct {
	ID           int64
	ReceiptID    int64
	AssignmentID int64
	Quantity     decimal.Decimal
	Cost         decimal.Decimal
	Price        decimal.Decimal
	Amount       decimal.Decimal
}

// Reversal cabecera de anulación de un ingreso (i_anulacion_ingreso).
type Reversal struct {
	ID        int64
	ReceiptID int64
	UserID    string
	Reason    string
	Date      time.Time
}

// ReversalLine detalle de anulación por asignación (i_anulacion_detalle).
type ReversalLine struct {
	ID           int64
	ReversalID   int64
	AssignmentID int64
	Quantity     decimal.Decimal
	StockBefore  decimal.Decimal
	StockAfter   decimal.Decimal
}
