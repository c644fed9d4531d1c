package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación de AssignmentRepository sobre PostgreSQL (usable con pool o tx).
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador de asignaciones. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

type assignmentRow struct {
	ID                 int64           `db:"id_asignacion"`
	ProductID          int64           `db:"producto_id"`
	AreaID             int64           `db:"area_id"`
	Code               *string         `db:"codigo"`
	Stock              decimal.Decimal `db:"stock"`
	TotalCost          decimal.Decimal `db:"costo_total"`
	AssignedAt         *time.Time      `db:"fecha_asignacion"`
	WrittenOff         int             `db:"estado_dado_baja"`
	MovementState      int             `db:"estado_movimiento"`
	ProductAreaID      *int64          `db:"producto_area_id"`
	ProductBarcode     *string         `db:"codigo_barras"`
	ProductName        *string         `db:"nombre_producto"`
	ProductDescription *string         `db:"descripcion"`
	ProductType        *string         `db:"tipo"`
	UnitMeasure        *string         `db:"unidad_medida"`
	AreaCode           *string         `db:"codigo_area"`
	AreaName           *string         `db:"nombre_area"`
	AreaDescription    *string         `db:"descripcion_area"`
}

func (row assignmentRow) toEntity() *entity.AssignmentDetail {
	d := &entity.AssignmentDetail{
		Assignment: entity.Assignment{
			ID:            row.ID,
			ProductID:     row.ProductID,
			AreaID:        row.AreaID,
			Code:          deref(row.Code),
			Stock:         row.Stock,
			TotalCost:     row.TotalCost,
			AssignedAt:    row.AssignedAt,
			WrittenOff:    row.WrittenOff == 1,
			MovementState: row.MovementState,
		},
		Product: entity.Product{
			ID:          row.ProductID,
			Barcode:     deref(row.ProductBarcode),
			Name:        deref(row.ProductName),
			Description: deref(row.ProductDescription),
			Type:        deref(row.ProductType),
			UnitMeasure: deref(row.UnitMeasure),
		},
		Area: entity.Area{
			ID:          row.AreaID,
			Code:        deref(row.AreaCode),
			Name:        deref(row.AreaName),
			Description: deref(row.AreaDescription),
		},
	}
	if row.ProductAreaID != nil {
		d.Product.AreaID = *row.ProductAreaID
	}
	return d
}

func (r *AssignmentRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.AssignmentDetail, error) {
	b := psql.
		Select(
			"ap.id_asignacion", "ap.producto_id", "ap.area_id", "ap.codigo",
			"COALESCE(ap.stock, 0) AS stock", "COALESCE(ap.costo_total, 0) AS costo_total",
			"ap.fecha_asignacion", "COALESCE(ap.estado_dado_baja, 0) AS estado_dado_baja",
			"COALESCE(ap.estado_movimiento, 0) AS estado_movimiento",
			"p.area_id AS producto_area_id", "p.codigo_barras", "p.nombre AS nombre_producto",
			"p.descripcion", "p.tipo", "p.unidad_medida",
			"ar.codigo AS codigo_area", "ar.nombre AS nombre_area", "ar.descripcion AS descripcion_area",
		).
		From("i_asignaciones_productos ap").
		LeftJoin("i_producto p ON p.id_producto = ap.producto_id").
		LeftJoin("i_areas ar ON ar.id_area = ap.area_id").
		Where("ap.id_asignacion = ?", id)
	if forUpdate {
		// FOR UPDATE no admite el lado nulo de un LEFT JOIN: se bloquea solo la asignación.
		b = b.Suffix("FOR UPDATE OF ap")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignment: %w", err)
	}

	var rows []assignmentRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toEntity(), nil
}

// GetDetail obtiene la asignación con producto y área.
func (r *AssignmentRepo) GetDetail(ctx context.Context, id int64) (*entity.AssignmentDetail, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene la asignación y bloquea la fila (SELECT FOR UPDATE).
func (r *AssignmentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.AssignmentDetail, error) {
	return r.get(ctx, id, true)
}

// UpdateBalance persiste stock, costo_total y estado_movimiento.
func (r *AssignmentRepo) UpdateBalance(ctx context.Context, a *entity.Assignment) error {
	query := `
		UPDATE i_asignaciones_productos
		SET stock = $1, costo_total = $2, estado_movimiento = $3
		WHERE id_asignacion = $4`
	if _, err := r.q.Exec(ctx, query, a.Stock, a.TotalCost, a.MovementState, a.ID); err != nil {
		return fmt.Errorf("update assignment balance: %w", err)
	}
	return nil
}

// MarkWrittenOff marca estado_dado_baja = 1.
func (r *AssignmentRepo) MarkWrittenOff(ctx context.Context, id int64) error {
	query := `UPDATE i_asignaciones_productos SET estado_dado_baja = 1 WHERE id_asignacion = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("mark assignment written off: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
