package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// KardexUseCase arma el kardex de una asignación y su reporte PDF.
type KardexUseCase struct {
	source       repository.KardexSourceRepository
	assignments  repository.AssignmentRepository
	writeOffs    repository.WriteOffRepository
	pdf          KardexPDFGenerator
	organization string
	now          func() time.Time
}

// NewKardexUseCase construye el caso de uso. pdf puede ser nil si no se expone el reporte.
func NewKardexUseCase(
	source repository.KardexSourceRepository,
	assignments repository.AssignmentRepository,
	writeOffs repository.WriteOffRepository,
	pdf KardexPDFGenerator,
	organization string,
) *KardexUseCase {
	return &KardexUseCase{
		source:       source,
		assignments:  assignments,
		writeOffs:    writeOffs,
		pdf:          pdf,
		organization: organization,
		now:          time.Now,
	}
}

// Kardex recalcula el historial completo de la asignación. Sin asignación o sin
// movimientos devuelve una lista vacía.
func (uc *KardexUseCase) Kardex(ctx context.Context, assignmentID int64) ([]kardex.Row, error) {
	if assignmentID <= 0 {
		return []kardex.Row{}, nil
	}
	receipts, err := uc.source.ReceiptLines(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("kardex ingresos: %w", err)
	}
	movements, err := uc.source.MovementLines(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("kardex movimientos: %w", err)
	}
	reversals, err := uc.source.ReversalLines(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("kardex anulaciones: %w", err)
	}
	return kardex.Build(receipts, movements, reversals), nil
}

// FilteredKardex calcula el historial completo y luego recorta por rango de fechas.
func (uc *KardexUseCase) FilteredKardex(ctx context.Context, assignmentID int64, rng kardex.DateRange) ([]kardex.Row, error) {
	rows, err := uc.Kardex(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return kardex.Filter(rows, rng), nil
}

// GetAssignmentKardex devuelve cabecera de producto y asignación, la última baja y el kardex.
func (uc *KardexUseCase) GetAssignmentKardex(ctx context.Context, assignmentID int64, rng kardex.DateRange) (*dto.AssignmentKardexResponse, error) {
	detail, writeOff, err := uc.loadHeader(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.FilteredKardex(ctx, assignmentID, rng)
	if err != nil {
		return nil, err
	}

	resp := &dto.AssignmentKardexResponse{
		Product: dto.KardexProductDTO{
			Code:        detail.Product.Barcode,
			Name:        detail.Product.Name,
			Description: detail.Product.Description,
			Type:        detail.Product.Type,
			UnitMeasure: detail.Product.UnitMeasure,
		},
		Assignment: dto.KardexAssignmentDTO{
			Code:      detail.Code,
			AreaName:  detail.Area.Name,
			Stock:     detail.Stock,
			TotalCost: detail.TotalCost,
		},
		Kardex: rows,
	}
	if detail.WrittenOff {
		resp.Assignment.WrittenOff = 1
	}
	if writeOff != nil {
		resp.WriteOff = &dto.WriteOffDTO{Date: writeOff.Date, Reason: writeOff.Reason, UserID: writeOff.UserID}
	}
	return resp, nil
}

// DownloadKardexPDF genera el reporte y devuelve el contenido y el nombre de archivo.
func (uc *KardexUseCase) DownloadKardexPDF(ctx context.Context, assignmentID int64, rng kardex.DateRange) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("generador de PDF no configurado")
	}
	detail, writeOff, err := uc.loadHeader(ctx, assignmentID)
	if err != nil {
		return nil, "", err
	}
	rows, err := uc.FilteredKardex(ctx, assignmentID, rng)
	if err != nil {
		return nil, "", err
	}
	content, err := uc.pdf.GenerateKardexPDF(ctx, KardexReport{
		Organization: uc.organization,
		Assignment:   detail,
		WriteOff:     writeOff,
		Range:        rng,
		Rows:         rows,
		GeneratedAt:  uc.now(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf kardex: %w", err)
	}
	return content, fmt.Sprintf("Kardex_%06d.pdf", assignmentID), nil
}

func (uc *KardexUseCase) loadHeader(ctx context.Context, assignmentID int64) (*entity.AssignmentDetail, *entity.WriteOff, error) {
	if assignmentID <= 0 {
		return nil, nil, domain.ErrNotFound
	}
	detail, err := uc.assignments.GetDetail(ctx, assignmentID)
	if err != nil {
		return nil, nil, err
	}
	if detail == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !detail.WrittenOff {
		return detail, nil, nil
	}
	writeOff, err := uc.writeOffs.Latest(ctx, assignmentID)
	if err != nil {
		return nil, nil, err
	}
	return detail, writeOff, nil
}
