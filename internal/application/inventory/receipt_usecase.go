package inventory

import (
	"context"
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

// ReceiptUseCase registra y anula notas de ingreso manteniendo stock y costo_total
// de cada asignación dentro de una transacción con bloqueo de fila.
type ReceiptUseCase struct {
	txRunner TxRunner
	receipts repository.ReceiptRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewReceiptUseCase construye el caso de uso. receipts se usa fuera de transacción (numeración).
func NewReceiptUseCase(txRunner TxRunner, receipts repository.ReceiptRepository, log zerolog.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRunner: txRunner,
		receipts: receipts,
		log:      log.With().Str("component", "ingresos").Logger(),
		now:      time.Now,
	}
}

// PostReceipt registra la cabecera activa y sus detalles. Las líneas sin asignación o
// con cantidad <= 0 se omiten; el resto suma cantidad al stock y costo al costo_total.
func (uc *ReceiptUseCase) PostReceipt(ctx context.Context, in dto.PostReceiptRequest) (*dto.PostedDocumentResponse, error) {
	if in.Number <= 0 || in.SupplierID <= 0 || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	receivedAt, err := parseTimestamp(in.ReceivedAt, uc.now())
	if err != nil {
		return nil, err
	}
	invoiceDate, err := parseOptionalTimestamp(in.InvoiceDate)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		Number:        in.Number,
		SupplierID:    in.SupplierID,
		InvoiceNumber: optionalString(in.InvoiceNumber),
		InvoiceDate:   invoiceDate,
		ReceivedAt:    receivedAt,
		ReceivedBy:    strings.TrimSpace(in.ReceivedBy),
		DeliveredBy:   strings.TrimSpace(in.DeliveredBy),
		Amount:        in.TotalAmount,
		Notes:         strings.TrimSpace(in.Notes),
		Status:        entity.ReceiptStatusActive,
	}

	err = uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Receipts.Create(ctx, receipt); err != nil {
			return err
		}
		for _, item := range in.Items {
			if item.AssignmentID <= 0 || !item.Quantity.GreaterThan(decimal.Zero) {
				continue
			}
			amount := item.Quantity.Mul(item.Price)
			if item.Amount != nil {
				amount = *item.Amount
			}
			line := &entity.ReceiptLine{
				ReceiptID:    receipt.ID,
				AssignmentID: item.AssignmentID,
				Quantity:     item.Quantity,
				Cost:         item.Cost,
				Price:        item.Price,
				Amount:       amount,
			}
			if err := r.Receipts.CreateLine(ctx, line); err != nil {
				return err
			}

			a, err := r.Assignments.GetForUpdate(ctx, item.AssignmentID)
			if err != nil {
				return err
			}
			if a == nil {
				uc.log.Warn().Int64("asignacion_id", item.AssignmentID).Msg("asignación no encontrada; detalle registrado sin actualizar stock")
				continue
			}
			prev := inventory.Balance{Stock: a.Stock, TotalCost: a.TotalCost}
			next := prev.Receive(item.Quantity, item.Cost)
			a.Stock, a.TotalCost = next.Stock, next.TotalCost
			if err := r.Assignments.UpdateBalance(ctx, &a.Assignment); err != nil {
				return err
			}

			unitCost := decimal.Zero
			if item.Quantity.GreaterThan(decimal.Zero) {
				unitCost = item.Cost.Div(item.Quantity)
			}
			avg := inventory.CostCalculator(prev.Stock, prev.AverageCost(), item.Quantity, unitCost)
			uc.log.Info().
				Int64("ingreso", receipt.Number).
				Int64("asignacion_id", a.ID).
				Str("stock_anterior", prev.Stock.String()).
				Str("stock_nuevo", next.Stock.String()).
				Str("costo_total", next.TotalCost.String()).
				Str("costo_promedio", avg.StringFixed(4)).
				Msg("stock actualizado por ingreso")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PostedDocumentResponse{ID: receipt.ID, Number: receipt.Number}, nil
}

// VoidReceipt anula un ingreso activo: cambia su estado, registra la anulación y
// revierte cada detalle sobre la asignación dejando stock previo y resultante.
func (uc *ReceiptUseCase) VoidReceipt(ctx context.Context, userID string, in dto.VoidReceiptRequest) error {
	reason := strings.TrimSpace(in.Reason)
	if in.ReceiptID <= 0 || reason == "" {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(r Repos) error {
		receipt, err := r.Receipts.GetForUpdate(ctx, in.ReceiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}
		if !receipt.IsActive() {
			return domain.ErrAlreadyVoided
		}
		if err := r.Receipts.UpdateStatus(ctx, receipt.ID, entity.ReceiptStatusVoided); err != nil {
			return err
		}

		reversal := &entity.Reversal{
			ReceiptID: receipt.ID,
			UserID:    userID,
			Reason:    reason,
			Date:      uc.now(),
		}
		if err := r.Reversals.Create(ctx, reversal); err != nil {
			return err
		}

		lines, err := r.Receipts.LinesForUpdate(ctx, receipt.ID)
		if err != nil {
			return err
		}
		for _, l := range lines {
			a, err := r.Assignments.GetForUpdate(ctx, l.AssignmentID)
			if err != nil {
				return err
			}
			if a == nil {
				continue
			}
			prev := inventory.Balance{Stock: a.Stock, TotalCost: a.TotalCost}
			next := prev.Revert(l.Quantity, l.Cost)
			if err := r.Reversals.CreateLine(ctx, &entity.ReversalLine{
				ReversalID:   reversal.ID,
				AssignmentID: l.AssignmentID,
				Quantity:     l.Quantity,
				StockBefore:  prev.Stock,
				StockAfter:   next.Stock,
			}); err != nil {
				return err
			}
			a.Stock, a.TotalCost = next.Stock, next.TotalCost
			if err := r.Assignments.UpdateBalance(ctx, &a.Assignment); err != nil {
				return err
			}
			uc.log.Info().
				Int64("ingreso", receipt.Number).
				Int64("asignacion_id", a.ID).
				Str("stock_anterior", prev.Stock.String()).
				Str("stock_nuevo", next.Stock.String()).
				Msg("stock revertido por anulación")
		}
		return nil
	})
}

// NextNumber sugiere el número del próximo ingreso.
func (uc *ReceiptUseCase) NextNumber(ctx context.Context) (*dto.NextNumberResponse, error) {
	last, err := uc.receipts.MaxNumber(ctx)
	if err != nil {
		return nil, err
	}
	return nextNumber(last), nil
}

func nextNumber(last *int64) *dto.NextNumberResponse {
	if last == nil {
		return &dto.NextNumberResponse{Number: 1}
	}
	return &dto.NextNumberResponse{Number: *last + 1, Max: last}
}
