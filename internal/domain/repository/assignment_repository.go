package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AssignmentRepository define el puerto de persistencia para asignaciones producto-área.
type AssignmentRepository interface {
	// GetDetail devuelve la asignación con producto y área; nil, nil si no existe.
	GetDetail(ctx context.Context, id int64) (*entity.AssignmentDetail, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y trae el tipo de producto; nil, nil si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.AssignmentDetail, error)
	// UpdateBalance persiste stock, costo_total y estado de movimiento.
	UpdateBalance(ctx context.Context, a *entity.Assignment) error
	// MarkWrittenOff marca la asignación como dada de baja.
	MarkWrittenOff(ctx context.Context, id int64) error
}

// WriteOffRepository define el puerto para bajas de asignaciones.
type WriteOffRepository interface {
	Create(ctx context.Context, w *entity.WriteOff) error
	// Latest devuelve la baja más reciente; nil, nil si no hay.
	Latest(ctx context.Context, assignmentID int64) (*entity.WriteOff, error)
}
