package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// WriteOffUseCase da de baja asignaciones de activos fijos.
type WriteOffUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewWriteOffUseCase construye el caso de uso.
func NewWriteOffUseCase(txRunner TxRunner, log zerolog.Logger) *WriteOffUseCase {
	return &WriteOffUseCase{txRunner: txRunner, log: log.With().Str("component", "bajas").Logger(), now: time.Now}
}

// WriteOff registra la baja. Solo aplica a productos "Activo Fijo" que no estén ya dados de baja.
func (uc *WriteOffUseCase) WriteOff(ctx context.Context, userID string, in dto.WriteOffRequest) error {
	reason := strings.TrimSpace(in.Reason)
	if in.AssignmentID <= 0 || reason == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		a, err := r.Assignments.GetForUpdate(ctx, in.AssignmentID)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if !a.Product.IsFixedAsset() {
			return domain.ErrNotFixedAsset
		}
		if a.WrittenOff {
			return domain.ErrWrittenOff
		}
		if err := r.WriteOffs.Create(ctx, &entity.WriteOff{
			AssignmentID: a.ID,
			Date:         uc.now(),
			Reason:       reason,
			UserID:       userID,
		}); err != nil {
			return err
		}
		if err := r.Assignments.MarkWrittenOff(ctx, a.ID); err != nil {
			return err
		}
		uc.log.Info().Int64("asignacion_id", a.ID).Str("usuario", userID).Msg("asignación dada de baja")
		return nil
	})
}
