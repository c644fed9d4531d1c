package kardex

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Sort ordena los eventos por fecha y, a igual fecha, por tipo de documento:
// ingreso de proveedor, salida, ingreso al almacén, anulación. Empates restantes
// conservan el orden de origen.
func Sort(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Kind < b.Kind
	})
	return sorted
}

// ledger estado acumulado del recálculo.
type ledger struct {
	qty     decimal.Decimal
	value   decimal.Decimal
	average decimal.Decimal
}

// in aplica una entrada y devuelve el costo unitario a mostrar en la fila.
func (l *ledger) in(ev Event) decimal.Decimal {
	newQty := l.qty.Add(ev.Quantity)
	if newQty.GreaterThan(decimal.Zero) {
		l.average = l.value.Add(ev.Value).Div(newQty)
	} else {
		l.average = decimal.Zero
	}
	l.value = l.value.Add(ev.Value)
	l.qty = newQty

	// En filas de ingreso se muestra el costo real de la línea, no el promedio.
	if ev.UnitCost.GreaterThan(decimal.Zero) {
		return ev.UnitCost
	}
	return l.average
}

// out aplica una salida o anulación y devuelve el costo unitario y el valor de salida.
// El saldo nunca queda negativo; el valor restante se valora al promedio previo.
func (l *ledger) out(ev Event) (unitCost, outValue decimal.Decimal) {
	switch {
	case ev.UnitCost.GreaterThan(decimal.Zero):
		unitCost = ev.UnitCost
		outValue = ev.Quantity.Mul(ev.UnitCost)
	default:
		unitCost = l.average
		outValue = decimal.Zero
		if l.average.GreaterThan(decimal.Zero) && ev.Quantity.GreaterThan(decimal.Zero) {
			outValue = ev.Quantity.Mul(l.average)
		}
	}

	l.qty = decimal.Max(decimal.Zero, l.qty.Sub(ev.Quantity))
	l.value = l.qty.Mul(l.average)
	return unitCost, outValue
}

// Compute ordena los eventos y recalcula saldo, costo promedio ponderado y valores
// después de cada uno. Siempre devuelve un slice no nil.
func Compute(events []Event) []Row {
	rows := make([]Row, 0, len(events))
	var l ledger

	for _, ev := range Sort(events) {
		row := Row{
			Date:     ev.Date,
			DocType:  ev.Kind.DocType(),
			Document: ev.Document,
			Detail:   ev.Detail,
			QtyIn:    decimal.Zero,
			QtyOut:   decimal.Zero,
			InValue:  decimal.Zero,
			OutValue: decimal.Zero,
		}

		if ev.Kind.IsInflow() {
			row.QtyIn = ev.Quantity
			row.UnitCost = l.in(ev)
			row.InValue = ev.Value.Round(2)
		} else {
			row.QtyOut = ev.Quantity
			unitCost, outValue := l.out(ev)
			row.UnitCost = unitCost
			row.OutValue = outValue.Round(2)
		}

		row.UnitCost = row.UnitCost.Round(2)
		row.Balance = l.qty.Round(2)
		row.BalanceValue = l.value.Round(2)
		rows = append(rows, row)
	}
	return rows
}

// Build une las tres fuentes y calcula el kardex completo.
func Build(receipts []ReceiptLineRecord, movements []MovementLineRecord, reversals []ReversalLineRecord) []Row {
	return Compute(Collect(receipts, movements, reversals))
}
