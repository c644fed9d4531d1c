package kardex

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const codeWidth = 6

// ReceiptLineRecord detalle de un ingreso activo para la asignación.
type ReceiptLineRecord struct {
	Date          time.Time       `db:"fecha"`
	ReceiptNumber int64           `db:"numero"`
	InvoiceNumber *string         `db:"factura_numero"`
	Quantity      decimal.Decimal `db:"cantidad"`
	LineCost      decimal.Decimal `db:"costo"`
}

// MovementLineRecord detalle de un movimiento (salida o ingreso al almacén) unido a su cabecera.
type MovementLineRecord struct {
	Date     time.Time       `db:"fecha"`
	Code     int64           `db:"codigo"`
	Type     int             `db:"tipo"`
	Notes    *string         `db:"observaciones"`
	Quantity decimal.Decimal `db:"cantidad"`
	UnitCost decimal.Decimal `db:"costo"`
	Total    decimal.Decimal `db:"total"`
}

// ReversalLineRecord detalle de anulación de un ingreso activo.
type ReversalLineRecord struct {
	Date       time.Time       `db:"fecha"`
	ReversalID int64           `db:"id_anulacion_ingreso"`
	Quantity   decimal.Decimal `db:"cantidad_revertida"`
	Reason     *string         `db:"motivo"`
}

// PadCode rellena con ceros a la izquierda hasta 6 caracteres. Igual que LPAD de SQL,
// si el número es más largo se trunca a los primeros 6 caracteres.
func PadCode(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) >= codeWidth {
		return s[:codeWidth]
	}
	return strings.Repeat("0", codeWidth-len(s)) + s
}

// FromReceipts convierte detalles de ingreso en eventos de entrada.
func FromReceipts(lines []ReceiptLineRecord) []Event {
	events := make([]Event, 0, len(lines))
	for _, l := range lines {
		unitCost := decimal.Zero
		if l.Quantity.GreaterThan(decimal.Zero) {
			unitCost = l.LineCost.Div(l.Quantity)
		}
		events = append(events, Event{
			Date:     l.Date,
			Kind:     KindReceipt,
			Document: DocTypeReceipt + "-" + PadCode(l.ReceiptNumber),
			Detail:   "Ingreso: " + valueOr(l.InvoiceNumber, "S/F"),
			Quantity: l.Quantity,
			UnitCost: unitCost,
			Value:    l.LineCost,
		})
	}
	return events
}

// FromMovements convierte detalles de movimiento en salidas (tipo 1) o entradas (tipo 2).
// Otros tipos se ignoran.
func FromMovements(lines []MovementLineRecord) []Event {
	events := make([]Event, 0, len(lines))
	for _, l := range lines {
		var kind Kind
		switch l.Type {
		case 1:
			kind = KindIssue
		case 2:
			kind = KindWarehouseReceipt
		default:
			continue
		}
		ev := Event{
			Date:     l.Date,
			Kind:     kind,
			Document: kind.DocType() + "-" + PadCode(l.Code),
			Detail:   "Movimiento: " + valueOr(l.Notes, ""),
			Quantity: l.Quantity,
			UnitCost: l.UnitCost,
		}
		if kind.IsInflow() {
			ev.Value = l.Total
		}
		events = append(events, ev)
	}
	return events
}

// FromReversals convierte detalles de anulación en salidas sin costo propio.
func FromReversals(lines []ReversalLineRecord) []Event {
	events := make([]Event, 0, len(lines))
	for _, l := range lines {
		events = append(events, Event{
			Date:     l.Date,
			Kind:     KindReversal,
			Document: DocTypeInbound + "-" + PadCode(l.ReversalID),
			Detail:   "Anulación: " + valueOr(l.Reason, ""),
			Quantity: l.Quantity,
		})
	}
	return events
}

// Collect une las tres fuentes en orden de origen: ingresos, movimientos, anulaciones.
func Collect(receipts []ReceiptLineRecord, movements []MovementLineRecord, reversals []ReversalLineRecord) []Event {
	events := FromReceipts(receipts)
	events = append(events, FromMovements(movements)...)
	return append(events, FromReversals(reversals)...)
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
