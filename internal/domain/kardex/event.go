// Package kardex reconstruye el historial de una asignación producto-área y calcula
// saldos y costo promedio ponderado después de cada movimiento.
//
// El cálculo es puro: recibe las filas ya leídas de la base de datos (ingresos,
// movimientos de almacén y anulaciones) y devuelve la secuencia de filas del kardex.
// No escribe nada ni mantiene estado entre llamadas.
package kardex

import (
	"time"

	"github.com/shopspring/decimal"
)

// Códigos de tipo de documento tal como aparecen en el reporte.
const (
	DocTypeReceipt = "NI" // nota de ingreso de proveedor
	DocTypeIssue   = "SA" // salida
	DocTypeInbound = "IA" // ingreso al almacén o anulación de ingreso
)

// Kind identifica la fuente de un evento. El orden de las constantes es la prioridad
// de desempate cuando dos eventos tienen la misma fecha.
type Kind int

const (
	KindReceipt Kind = iota
	KindIssue
	KindWarehouseReceipt
	KindReversal
)

// DocType devuelve el código de documento del evento.
func (k Kind) DocType() string {
	switch k {
	case KindReceipt:
		return DocTypeReceipt
	case KindIssue:
		return DocTypeIssue
	default:
		return DocTypeInbound
	}
}

// IsInflow indica si el evento suma cantidad al saldo.
func (k Kind) IsInflow() bool {
	return k == KindReceipt || k == KindWarehouseReceipt
}

// Event es un movimiento normalizado listo para el recálculo.
type Event struct {
	Date     time.Time
	Kind     Kind
	Document string
	Detail   string
	Quantity decimal.Decimal
	// UnitCost es el costo unitario propio del documento; cero significa que no trae
	// costo y la fila usa el promedio vigente.
	UnitCost decimal.Decimal
	// Value es el valor de ingreso (costo total de la línea). Solo aplica a entradas.
	Value decimal.Decimal
}

// Row es una fila del kardex. Los nombres JSON son los que consumen los reportes existentes.
type Row struct {
	Date         time.Time       `json:"fecha"`
	DocType      string          `json:"tipo_doc"`
	Document     string          `json:"documento"`
	Detail       string          `json:"detalle"`
	QtyIn        decimal.Decimal `json:"ingreso"`
	QtyOut       decimal.Decimal `json:"salida"`
	Balance      decimal.Decimal `json:"saldo"`
	UnitCost     decimal.Decimal `json:"costo_unitario"`
	InValue      decimal.Decimal `json:"ing_val"`
	OutValue     decimal.Decimal `json:"sal_val"`
	BalanceValue decimal.Decimal `json:"saldo_val"`
}
