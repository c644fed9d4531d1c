package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para notas de ingreso.
type ReceiptRepository interface {
	Create(ctx context.Context, r *entity.Receipt) error
	CreateLine(ctx context.Context, l *entity.ReceiptLine) error
	// GetForUpdate bloquea la cabecera; nil, nil si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.Receipt, error)
	// LinesForUpdate bloquea y devuelve los detalles del ingreso.
	LinesForUpdate(ctx context.Context, receiptID int64) ([]entity.ReceiptLine, error)
	UpdateStatus(ctx context.Context, id int64, status int) error
	// MaxNumber devuelve el mayor número registrado; nil si no hay ingresos.
	MaxNumber(ctx context.Context) (*int64, error)
}

// ReversalRepository define el puerto para anulaciones de ingresos.
type ReversalRepository interface {
	Create(ctx context.Context, r *entity.Reversal) error
	CreateLine(ctx context.Context, l *entity.ReversalLine) error
}
