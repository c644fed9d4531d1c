package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Assignments repository.AssignmentRepository
	Receipts    repository.ReceiptRepository
	Reversals   repository.ReversalRepository
	Movements   repository.MovementRepository
	WriteOffs   repository.WriteOffRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// KardexReport datos que necesita el generador de PDF.
type KardexReport struct {
	Organization string
	Assignment   *entity.AssignmentDetail
	WriteOff     *entity.WriteOff
	Range        kardex.DateRange
	Rows         []kardex.Row
	GeneratedAt  time.Time
}

// KardexPDFGenerator genera el PDF del kardex de una asignación.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, report KardexReport) ([]byte, error)
}
