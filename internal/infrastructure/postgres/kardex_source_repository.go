package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.KardexSourceRepository = (*KardexSourceRepo)(nil)

// KardexSourceRepo lee ingresos, movimientos y anulaciones de una asignación.
type KardexSourceRepo struct {
	q Querier
}

// NewKardexSourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKardexSourceRepository(q Querier) *KardexSourceRepo {
	return &KardexSourceRepo{q: q}
}

// receiptLinesQuery detalles de ingresos activos (estado = 1).
func receiptLinesQuery(assignmentID int64) sq.SelectBuilder {
	return psql.
		Select(
			"ing.fecha_ingreso AS fecha",
			"ing.numero",
			"ing.factura_numero",
			"d.cantidad",
			"d.costo",
		).
		From("i_detalle_ingreso d").
		Join("i_ingresos ing ON ing.id_ingreso = d.ingreso_id").
		Where("d.asignacion_id = ?", assignmentID).
		Where("ing.estado = ?", entity.ReceiptStatusActive).
		OrderBy("ing.fecha_ingreso", "ing.id_ingreso")
}

// ReceiptLines detalles de ingresos activos de la asignación.
func (r *KardexSourceRepo) ReceiptLines(ctx context.Context, assignmentID int64) ([]kardex.ReceiptLineRecord, error) {
	query, args, err := receiptLinesQuery(assignmentID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build receipt lines: %w", err)
	}
	var rows []kardex.ReceiptLineRecord
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("kardex receipt lines: %w", err)
	}
	return rows, nil
}

func movementLinesQuery(assignmentID int64) sq.SelectBuilder {
	return psql.
		Select(
			"m.fecha",
			"m.codigo",
			"m.tipo",
			"m.observaciones",
			"dm.cantidad",
			"dm.costo",
			"dm.total",
		).
		From("i_detalle_movimientos dm").
		Join("i_movimiento m ON m.id_movimiento = dm.movimiento_id").
		Where("dm.asignacion_id = ?", assignmentID).
		OrderBy("m.fecha", "m.id_movimiento")
}

// MovementLines detalles de salidas (tipo 1) e ingresos al almacén (tipo 2).
func (r *KardexSourceRepo) MovementLines(ctx context.Context, assignmentID int64) ([]kardex.MovementLineRecord, error) {
	query, args, err := movementLinesQuery(assignmentID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movement lines: %w", err)
	}
	var rows []kardex.MovementLineRecord
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("kardex movement lines: %w", err)
	}
	return rows, nil
}

// reversalLinesQuery detalles de anulación cuyo ingreso sigue con estado = 1.
// Al anular un ingreso su estado pasa a 0, por lo que en la práctica esta fuente
// solo aporta filas cuando el ingreso se reactivó manualmente.
func reversalLinesQuery(assignmentID int64) sq.SelectBuilder {
	return psql.
		Select(
			"a.fecha_anulacion AS fecha",
			"a.id_anulacion_ingreso",
			"ad.cantidad_revertida",
			"a.motivo",
		).
		From("i_anulacion_detalle ad").
		Join("i_anulacion_ingreso a ON a.id_anulacion_ingreso = ad.anulacion_ingreso_id").
		Join("i_ingresos ing ON ing.id_ingreso = a.ingreso_id").
		Where("ad.asignacion_id = ?", assignmentID).
		Where("ing.estado = ?", entity.ReceiptStatusActive).
		OrderBy("a.fecha_anulacion", "a.id_anulacion_ingreso")
}

// ReversalLines detalles de anulación de la asignación.
func (r *KardexSourceRepo) ReversalLines(ctx context.Context, assignmentID int64) ([]kardex.ReversalLineRecord, error) {
	query, args, err := reversalLinesQuery(assignmentID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reversal lines: %w", err)
	}
	var rows []kardex.ReversalLineRecord
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("kardex reversal lines: %w", err)
	}
	return rows, nil
}
