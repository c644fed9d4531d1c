package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/kardex"
)

// KardexSourceRepository lee las tres fuentes del kardex para una asignación.
// Cada método devuelve las filas ordenadas por fecha e id de cabecera.
type KardexSourceRepository interface {
	// ReceiptLines detalles de ingresos con estado activo.
	ReceiptLines(ctx context.Context, assignmentID int64) ([]kardex.ReceiptLineRecord, error)
	// MovementLines detalles de salidas e ingresos al almacén.
	MovementLines(ctx context.Context, assignmentID int64) ([]kardex.MovementLineRecord, error)
	// ReversalLines detalles de anulación cuyo ingreso sigue activo.
	ReversalLines(ctx context.Context, assignmentID int64) ([]kardex.ReversalLineRecord, error)
}
