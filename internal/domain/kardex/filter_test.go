package kardex_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
)

func TestPadCode(t *testing.T) {
	cases := map[int64]string{
		0:        "000000",
		7:        "000007",
		123456:   "123456",
		1234567:  "123456", // LPAD trunca
		42000001: "420000",
	}
	for in, want := range cases {
		assert.Equal(t, want, kardex.PadCode(in), "PadCode(%d)", in)
	}
}

func TestFromReceipts_SinFacturaUsaSF(t *testing.T) {
	events := kardex.FromReceipts([]kardex.ReceiptLineRecord{{
		Date: day(1), ReceiptNumber: 3, Quantity: dec("4"), LineCost: dec("10"),
	}})
	require.Len(t, events, 1)
	assert.Equal(t, "Ingreso: S/F", events[0].Detail)
	assertDec(t, "2.5", events[0].UnitCost, "costo unitario = costo de línea / cantidad")
	assertDec(t, "10", events[0].Value, "valor de ingreso = costo de línea")
}

func TestFromMovements_TipoDesconocidoSeIgnora(t *testing.T) {
	events := kardex.FromMovements([]kardex.MovementLineRecord{
		{Date: day(1), Code: 1, Type: 3, Quantity: dec("1")},
		{Date: day(1), Code: 2, Type: 2, Quantity: dec("1"), UnitCost: dec("4"), Total: dec("4")},
	})
	require.Len(t, events, 1)
	assert.Equal(t, kardex.KindWarehouseReceipt, events[0].Kind)
	assert.Equal(t, "IA-000002", events[0].Document)
	assert.Equal(t, "Movimiento: ", events[0].Detail)
	assertDec(t, "4", events[0].Value, "valor de ingreso = total de línea")
}

func TestFromMovements_SalidaNoLlevaValorDeIngreso(t *testing.T) {
	events := kardex.FromMovements([]kardex.MovementLineRecord{issue(1, 5, "2", "3")})
	require.Len(t, events, 1)
	assert.True(t, events[0].Value.IsZero())
	assert.False(t, events[0].Kind.IsInflow())
}

// ──────────────────────────────────────────────────────────────────────────────
// Fechas y filtro por rango
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDate_Formatos(t *testing.T) {
	want := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"07/03/2025", "7/3/2025", "2025-03-07", "2025-03-07 18:30:00", "2025-03-07T18:30:00Z"} {
		got, err := kardex.ParseDate(in)
		require.NoError(t, err, in)
		require.NotNil(t, got, in)
		assert.True(t, want.Equal(*got), "%s → %s", in, got)
	}
}

func TestParseDate_VaciaEsNil(t *testing.T) {
	got, err := kardex.ParseDate("  ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseDate_Invalida(t *testing.T) {
	_, err := kardex.ParseDate("31/02/2025")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = kardex.ParseDate("ayer")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestFilter_RangoInclusivoSinRecalcular(t *testing.T) {
	rows := kardex.Build(
		[]kardex.ReceiptLineRecord{receipt(1, 1, "10", "100"), receipt(10, 2, "10", "200")},
		[]kardex.MovementLineRecord{issue(5, 1, "4", "0"), issue(12, 2, "1", "0")},
		nil,
	)
	require.Len(t, rows, 4)

	from, to := day(5), day(10)
	filtered := kardex.Filter(rows, kardex.DateRange{From: &from, To: &to})
	require.Len(t, filtered, 2)
	assert.Equal(t, "SA-000001", filtered[0].Document)
	assert.Equal(t, "NI-000002", filtered[1].Document)
	// Los saldos siguen reflejando todo el historial.
	assertDec(t, "6", filtered[0].Balance, "saldo tras la salida")
	assertDec(t, "16", filtered[1].Balance, "saldo tras el segundo ingreso")
}

func TestFilter_ComparaSoloLaFecha(t *testing.T) {
	late := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	rows := []kardex.Row{{Date: late, Document: "NI-000001"}}
	to := day(10)
	assert.Len(t, kardex.Filter(rows, kardex.DateRange{To: &to}), 1)

	from := day(11)
	assert.Empty(t, kardex.Filter(rows, kardex.DateRange{From: &from}))
}

func TestFilter_SinRangoDevuelveTodo(t *testing.T) {
	rows := []kardex.Row{{Date: day(1)}, {Date: day(2)}}
	assert.Equal(t, rows, kardex.Filter(rows, kardex.DateRange{}))
}
