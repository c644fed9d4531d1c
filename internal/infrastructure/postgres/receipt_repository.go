package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre i_ingresos / i_detalle_ingreso.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de ingresos. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create inserta la cabecera y asigna el ID generado.
func (r *ReceiptRepo) Create(ctx context.Context, rc *entity.Receipt) error {
	query := `
		INSERT INTO i_ingresos (numero, proveedor_id, factura_numero, fecha_factura, fecha_ingreso,
			persona_recibe, persona_entrega, importe, observaciones, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_ingreso`
	err := r.q.QueryRow(ctx, query,
		rc.Number, rc.SupplierID, rc.InvoiceNumber, rc.InvoiceDate, rc.ReceivedAt,
		rc.ReceivedBy, rc.DeliveredBy, rc.Amount, rc.Notes, rc.Status,
	).Scan(&rc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de ingreso %d ya registrado", domain.ErrConflict, rc.Number)
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// CreateLine inserta un detalle del ingreso.
func (r *ReceiptRepo) CreateLine(ctx context.Context, l *entity.ReceiptLine) error {
	query := `
		INSERT INTO i_detalle_ingreso (ingreso_id, asignacion_id, cantidad, costo, precio, importe)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_detalle_ingreso`
	err := r.q.QueryRow(ctx, query,
		l.ReceiptID, l.AssignmentID, l.Quantity, l.Cost, l.Price, l.Amount,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert receipt line: %w", err)
	}
	return nil
}

// GetForUpdate bloquea la cabecera del ingreso.
func (r *ReceiptRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Receipt, error) {
	query := `
		SELECT id_ingreso, numero, COALESCE(estado, 0)
		FROM i_ingresos WHERE id_ingreso = $1
		FOR UPDATE`
	var rc entity.Receipt
	err := r.q.QueryRow(ctx, query, id).Scan(&rc.ID, &rc.Number, &rc.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt for update: %w", err)
	}
	return &rc, nil
}

type receiptLineRow struct {
	ID           int64           `db:"id_detalle_ingreso"`
	ReceiptID    int64           `db:"ingreso_id"`
	AssignmentID int64           `db:"asignacion_id"`
	Quantity     decimal.Decimal `db:"cantidad"`
	Cost         decimal.Decimal `db:"costo"`
}

// LinesForUpdate bloquea y devuelve los detalles del ingreso.
func (r *ReceiptRepo) LinesForUpdate(ctx context.Context, receiptID int64) ([]entity.ReceiptLine, error) {
	query := `
		SELECT id_detalle_ingreso, ingreso_id, asignacion_id,
			COALESCE(cantidad, 0) AS cantidad, COALESCE(costo, 0) AS costo
		FROM i_detalle_ingreso WHERE ingreso_id = $1
		ORDER BY id_detalle_ingreso
		FOR UPDATE`
	var rows []receiptLineRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, receiptID); err != nil {
		return nil, fmt.Errorf("receipt lines for update: %w", err)
	}
	lines := make([]entity.ReceiptLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entity.ReceiptLine{
			ID:           row.ID,
			ReceiptID:    row.ReceiptID,
			AssignmentID: row.AssignmentID,
			Quantity:     row.Quantity,
			Cost:         row.Cost,
		})
	}
	return lines, nil
}

// UpdateStatus cambia el estado del ingreso (1 activo, 0 anulado).
func (r *ReceiptRepo) UpdateStatus(ctx context.Context, id int64, status int) error {
	if _, err := r.q.Exec(ctx, `UPDATE i_ingresos SET estado = $1 WHERE id_ingreso = $2`, status, id); err != nil {
		return fmt.Errorf("update receipt status: %w", err)
	}
	return nil
}

// MaxNumber devuelve el mayor número de ingreso.
func (r *ReceiptRepo) MaxNumber(ctx context.Context) (*int64, error) {
	query, args, err := psql.Select("MAX(numero)").From("i_ingresos").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build max receipt number: %w", err)
	}
	var last *int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&last); err != nil {
		return nil, fmt.Errorf("max receipt number: %w", err)
	}
	return last, nil
}
