package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para salidas e ingresos al almacén.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	CreateLine(ctx context.Context, l *entity.MovementLine) error
	// MaxCode devuelve el mayor código del tipo indicado; nil si no hay movimientos.
	MaxCode(ctx context.Context, movementType int) (*int64, error)
}
