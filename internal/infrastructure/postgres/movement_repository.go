package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre i_movimiento / i_detalle_movimientos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta la cabecera del movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO i_movimiento (codigo, area, fecha, persona_entrega, persona_recibe, observaciones, tipo, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_movimiento`
	err := r.q.QueryRow(ctx, query,
		m.Code, m.AreaID, m.Date, m.DeliveredBy, m.ReceivedBy, m.Notes, m.Type, m.Total,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código de movimiento %d ya registrado", domain.ErrConflict, m.Code)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// CreateLine inserta un detalle del movimiento.
func (r *MovementRepo) CreateLine(ctx context.Context, l *entity.MovementLine) error {
	query := `
		INSERT INTO i_detalle_movimientos (movimiento_id, asignacion_id, cantidad, costo, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_detalle_movimiento`
	err := r.q.QueryRow(ctx, query,
		l.MovementID, l.AssignmentID, l.Quantity, l.UnitCost, l.Total,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert movement line: %w", err)
	}
	return nil
}

// MaxCode devuelve el mayor código del tipo indicado.
func (r *MovementRepo) MaxCode(ctx context.Context, movementType int) (*int64, error) {
	query, args, err := psql.
		Select("MAX(codigo)").
		From("i_movimiento").
		Where(sq.Eq{"tipo": movementType}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build max movement code: %w", err)
	}
	var last *int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&last); err != nil {
		return nil, fmt.Errorf("max movement code: %w", err)
	}
	return last, nil
}
