package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReversalRepository = (*ReversalRepo)(nil)

// ReversalRepo implementación de ReversalRepository sobre i_anulacion_ingreso / i_anulacion_detalle.
type ReversalRepo struct {
	q Querier
}

// NewReversalRepository construye el adaptador de anulaciones.
func NewReversalRepository(q Querier) *ReversalRepo {
	return &ReversalRepo{q: q}
}

// Create inserta la cabecera de anulación.
func (r *ReversalRepo) Create(ctx context.Context, rv *entity.Reversal) error {
	query := `
		INSERT INTO i_anulacion_ingreso (ingreso_id, usuario, motivo, fecha_anulacion)
		VALUES ($1, $2, $3, $4)
		RETURNING id_anulacion_ingreso`
	if err := r.q.QueryRow(ctx, query, rv.ReceiptID, rv.UserID, rv.Reason, rv.Date).Scan(&rv.ID); err != nil {
		return fmt.Errorf("insert reversal: %w", err)
	}
	return nil
}

// CreateLine inserta el detalle con stock previo y resultante.
func (r *ReversalRepo) CreateLine(ctx context.Context, l *entity.ReversalLine) error {
	query := `
		INSERT INTO i_anulacion_detalle (anulacion_ingreso_id, asignacion_id, cantidad_revertida, stock_previo, stock_resultante)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_anulacion_detalle`
	err := r.q.QueryRow(ctx, query,
		l.ReversalID, l.AssignmentID, l.Quantity, l.StockBefore, l.StockAfter,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert reversal line: %w", err)
	}
	return nil
}
