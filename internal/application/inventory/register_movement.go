package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase registra salidas (tipo 1) e ingresos al almacén (tipo 2)
// de forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) por asignación.
type RegisterMovementUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movements repository.MovementRepository, log zerolog.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		log:       log.With().Str("component", "movimientos").Logger(),
		now:       time.Now,
	}
}

// PostIssue registra una salida hacia un área.
func (uc *RegisterMovementUseCase) PostIssue(ctx context.Context, in dto.PostIssueRequest) (*dto.PostedDocumentResponse, error) {
	return uc.post(ctx, entity.MovementTypeIssue, in.MovementRequest, in.Date)
}

// PostWarehouseReceipt registra un ingreso al almacén (devolución desde un área).
func (uc *RegisterMovementUseCase) PostWarehouseReceipt(ctx context.Context, in dto.PostWarehouseReceiptRequest) (*dto.PostedDocumentResponse, error) {
	return uc.post(ctx, entity.MovementTypeWarehouseReceipt, in.MovementRequest, in.Date)
}

// NextCode sugiere el código del próximo movimiento del tipo indicado.
func (uc *RegisterMovementUseCase) NextCode(ctx context.Context, movementType int) (*dto.NextNumberResponse, error) {
	if movementType != entity.MovementTypeIssue && movementType != entity.MovementTypeWarehouseReceipt {
		return nil, domain.ErrInvalidInput
	}
	last, err := uc.movements.MaxCode(ctx, movementType)
	if err != nil {
		return nil, err
	}
	return nextNumber(last), nil
}

func (uc *RegisterMovementUseCase) post(ctx context.Context, movementType int, in dto.MovementRequest, date string) (*dto.PostedDocumentResponse, error) {
	if in.Number <= 0 || in.AreaID <= 0 || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	at, err := parseTimestamp(date, uc.now())
	if err != nil {
		return nil, err
	}

	mov := &entity.Movement{
		Code:        in.Number,
		AreaID:      in.AreaID,
		Date:        at,
		DeliveredBy: strings.TrimSpace(in.DeliveredBy),
		ReceivedBy:  strings.TrimSpace(in.ReceivedBy),
		Notes:       strings.TrimSpace(in.Notes),
		Type:        movementType,
		Total:       in.TotalAmount,
	}

	err = uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Movements.Create(ctx, mov); err != nil {
			return err
		}
		for _, item := range in.Items {
			if item.AssignmentID <= 0 || !item.Quantity.GreaterThan(decimal.Zero) {
				continue
			}
			a, err := r.Assignments.GetForUpdate(ctx, item.AssignmentID)
			if err != nil {
				return err
			}
			if a != nil && a.WrittenOff {
				return fmt.Errorf("%w: asignación %d", domain.ErrWrittenOff, a.ID)
			}
			if a == nil && movementType == entity.MovementTypeWarehouseReceipt {
				uc.log.Warn().Int64("asignacion_id", item.AssignmentID).Msg("asignación no encontrada; ítem omitido")
				continue
			}

			if err := r.Movements.CreateLine(ctx, &entity.MovementLine{
				MovementID:   mov.ID,
				AssignmentID: item.AssignmentID,
				Quantity:     item.Quantity,
				UnitCost:     item.UnitPrice,
				Total:        item.Amount,
			}); err != nil {
				return err
			}
			if a == nil {
				continue
			}

			prev := inventory.Balance{Stock: a.Stock, TotalCost: a.TotalCost}
			var next inventory.Balance
			fixedAsset := a.Product.IsFixedAsset()
			if movementType == entity.MovementTypeIssue {
				next = prev.Issue(item.Quantity, item.UnitPrice)
				if fixedAsset {
					a.MovementState = entity.MovementStateOut
				}
			} else {
				next = prev.Receive(item.Quantity, item.Amount)
				a.MovementState = entity.MovementStateInWarehouse
				if fixedAsset {
					a.MovementState = entity.MovementStateReturned
				}
			}
			a.Stock, a.TotalCost = next.Stock, next.TotalCost
			if err := r.Assignments.UpdateBalance(ctx, &a.Assignment); err != nil {
				return err
			}
			uc.log.Info().
				Int("tipo", movementType).
				Int64("codigo", mov.Code).
				Int64("asignacion_id", a.ID).
				Str("stock_anterior", prev.Stock.String()).
				Str("stock_nuevo", next.Stock.String()).
				Str("costo_total", next.TotalCost.String()).
				Int("estado_movimiento", a.MovementState).
				Msg("stock actualizado por movimiento")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PostedDocumentResponse{ID: mov.ID, Number: mov.Code}, nil
}
