package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.WriteOffRepository = (*WriteOffRepo)(nil)

// WriteOffRepo implementación de WriteOffRepository sobre i_bajas_productos.
type WriteOffRepo struct {
	q Querier
}

// NewWriteOffRepository construye el adaptador de bajas.
func NewWriteOffRepository(q Querier) *WriteOffRepo {
	return &WriteOffRepo{q: q}
}

// Create inserta la baja y asigna el ID generado.
func (r *WriteOffRepo) Create(ctx context.Context, w *entity.WriteOff) error {
	query := `
		INSERT INTO i_bajas_productos (asignacion_id, fecha_baja, motivo, usuario_registra)
		VALUES ($1, $2, $3, $4)
		RETURNING id_baja`
	if err := r.q.QueryRow(ctx, query, w.AssignmentID, w.Date, w.Reason, w.UserID).Scan(&w.ID); err != nil {
		return fmt.Errorf("insert write-off: %w", err)
	}
	return nil
}

type writeOffRow struct {
	ID           int64     `db:"id_baja"`
	AssignmentID int64     `db:"asignacion_id"`
	Date         time.Time `db:"fecha_baja"`
	Reason       *string   `db:"motivo"`
	UserID       *string   `db:"usuario_registra"`
}

// Latest devuelve la baja más reciente de la asignación.
func (r *WriteOffRepo) Latest(ctx context.Context, assignmentID int64) (*entity.WriteOff, error) {
	query, args, err := psql.
		Select("id_baja", "asignacion_id", "fecha_baja", "motivo", "usuario_registra::text AS usuario_registra").
		From("i_bajas_productos").
		Where("asignacion_id = ?", assignmentID).
		OrderBy("fecha_baja DESC", "id_baja DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest write-off: %w", err)
	}
	var rows []writeOffRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("latest write-off: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]
	return &entity.WriteOff{
		ID:           row.ID,
		AssignmentID: row.AssignmentID,
		Date:         row.Date,
		Reason:       deref(row.Reason),
		UserID:       deref(row.UserID),
	}, nil
}
