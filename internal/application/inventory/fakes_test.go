package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
)

// memStore base en memoria que implementa todos los repositorios. memTx ejecuta
// la función sobre una copia y solo la publica si no hubo error (simula Rollback).
type memStore struct {
	assignments   map[int64]entity.AssignmentDetail
	receipts      map[int64]entity.Receipt
	receiptLines  []entity.ReceiptLine
	reversals     []entity.Reversal
	reversalLines []entity.ReversalLine
	movements     []entity.Movement
	movementLines []entity.MovementLine
	writeOffs     []entity.WriteOff
	seq           int64

	sourceErr error
}

func newMemStore() *memStore {
	return &memStore{
		assignments: map[int64]entity.AssignmentDetail{},
		receipts:    map[int64]entity.Receipt{},
		seq:         100,
	}
}

func (s *memStore) clone() *memStore {
	c := *s
	c.assignments = make(map[int64]entity.AssignmentDetail, len(s.assignments))
	for k, v := range s.assignments {
		c.assignments[k] = v
	}
	c.receipts = make(map[int64]entity.Receipt, len(s.receipts))
	for k, v := range s.receipts {
		c.receipts[k] = v
	}
	c.receiptLines = append([]entity.ReceiptLine(nil), s.receiptLines...)
	c.reversals = append([]entity.Reversal(nil), s.reversals...)
	c.reversalLines = append([]entity.ReversalLine(nil), s.reversalLines...)
	c.movements = append([]entity.Movement(nil), s.movements...)
	c.movementLines = append([]entity.MovementLine(nil), s.movementLines...)
	c.writeOffs = append([]entity.WriteOff(nil), s.writeOffs...)
	return &c
}

func (s *memStore) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *memStore) repos() Repos {
	return Repos{
		Assignments: s,
		Receipts:    receiptRepo{s},
		Reversals:   reversalRepo{s},
		Movements:   movementRepo{s},
		WriteOffs:   writeOffRepo{s},
	}
}

type memTx struct {
	store *memStore
	calls int
}

func (t *memTx) Run(ctx context.Context, fn func(r Repos) error) error {
	t.calls++
	work := t.store.clone()
	if err := fn(work.repos()); err != nil {
		return err
	}
	*t.store = *work
	return nil
}

// Asignaciones

func (s *memStore) GetDetail(ctx context.Context, id int64) (*entity.AssignmentDetail, error) {
	a, ok := s.assignments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *memStore) GetForUpdate(ctx context.Context, id int64) (*entity.AssignmentDetail, error) {
	return s.GetDetail(ctx, id)
}

func (s *memStore) UpdateBalance(ctx context.Context, a *entity.Assignment) error {
	d := s.assignments[a.ID]
	d.Stock, d.TotalCost, d.MovementState = a.Stock, a.TotalCost, a.MovementState
	s.assignments[a.ID] = d
	return nil
}

func (s *memStore) MarkWrittenOff(ctx context.Context, id int64) error {
	d := s.assignments[id]
	d.WrittenOff = true
	s.assignments[id] = d
	return nil
}

// Fuentes del kardex: se derivan de los documentos guardados con los mismos
// filtros que las consultas SQL (solo ingresos con estado activo).

func (s *memStore) ReceiptLines(ctx context.Context, id int64) ([]kardex.ReceiptLineRecord, error) {
	if s.sourceErr != nil {
		return nil, s.sourceErr
	}
	var out []kardex.ReceiptLineRecord
	for _, l := range s.receiptLines {
		rc, ok := s.receipts[l.ReceiptID]
		if l.AssignmentID != id || !ok || !rc.IsActive() {
			continue
		}
		out = append(out, kardex.ReceiptLineRecord{
			Date:          rc.ReceivedAt,
			ReceiptNumber: rc.Number,
			InvoiceNumber: rc.InvoiceNumber,
			Quantity:      l.Quantity,
			LineCost:      l.Cost,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *memStore) MovementLines(ctx context.Context, id int64) ([]kardex.MovementLineRecord, error) {
	var out []kardex.MovementLineRecord
	for _, l := range s.movementLines {
		if l.AssignmentID != id {
			continue
		}
		for _, m := range s.movements {
			if m.ID != l.MovementID {
				continue
			}
			notes := m.Notes
			out = append(out, kardex.MovementLineRecord{
				Date:     m.Date,
				Code:     m.Code,
				Type:     m.Type,
				Notes:    &notes,
				Quantity: l.Quantity,
				UnitCost: l.UnitCost,
				Total:    l.Total,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *memStore) ReversalLines(ctx context.Context, id int64) ([]kardex.ReversalLineRecord, error) {
	var out []kardex.ReversalLineRecord
	for _, l := range s.reversalLines {
		if l.AssignmentID != id {
			continue
		}
		for _, rv := range s.reversals {
			if rv.ID != l.ReversalID {
				continue
			}
			if rc, ok := s.receipts[rv.ReceiptID]; !ok || !rc.IsActive() {
				continue
			}
			reason := rv.Reason
			out = append(out, kardex.ReversalLineRecord{
				Date:       rv.Date,
				ReversalID: rv.ID,
				Quantity:   l.Quantity,
				Reason:     &reason,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type receiptRepo struct{ s *memStore }

func (r receiptRepo) Create(ctx context.Context, rc *entity.Receipt) error {
	rc.ID = r.s.nextID()
	r.s.receipts[rc.ID] = *rc
	return nil
}

func (r receiptRepo) CreateLine(ctx context.Context, l *entity.ReceiptLine) error {
	l.ID = r.s.nextID()
	r.s.receiptLines = append(r.s.receiptLines, *l)
	return nil
}

func (r receiptRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Receipt, error) {
	rc, ok := r.s.receipts[id]
	if !ok {
		return nil, nil
	}
	return &rc, nil
}

func (r receiptRepo) LinesForUpdate(ctx context.Context, receiptID int64) ([]entity.ReceiptLine, error) {
	var out []entity.ReceiptLine
	for _, l := range r.s.receiptLines {
		if l.ReceiptID == receiptID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r receiptRepo) UpdateStatus(ctx context.Context, id int64, status int) error {
	rc := r.s.receipts[id]
	rc.Status = status
	r.s.receipts[id] = rc
	return nil
}

func (r receiptRepo) MaxNumber(ctx context.Context) (*int64, error) {
	if len(r.s.receipts) == 0 {
		return nil, nil
	}
	nums := make([]int64, 0, len(r.s.receipts))
	for _, rc := range r.s.receipts {
		nums = append(nums, rc.Number)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] > nums[j] })
	return &nums[0], nil
}

type reversalRepo struct{ s *memStore }

func (r reversalRepo) Create(ctx context.Context, rv *entity.Reversal) error {
	rv.ID = r.s.nextID()
	r.s.reversals = append(r.s.reversals, *rv)
	return nil
}

func (r reversalRepo) CreateLine(ctx context.Context, l *entity.ReversalLine) error {
	l.ID = r.s.nextID()
	r.s.reversalLines = append(r.s.reversalLines, *l)
	return nil
}

type movementRepo struct{ s *memStore }

func (r movementRepo) Create(ctx context.Context, m *entity.Movement) error {
	m.ID = r.s.nextID()
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r movementRepo) CreateLine(ctx context.Context, l *entity.MovementLine) error {
	l.ID = r.s.nextID()
	r.s.movementLines = append(r.s.movementLines, *l)
	return nil
}

func (r movementRepo) MaxCode(ctx context.Context, movementType int) (*int64, error) {
	var last *int64
	for _, m := range r.s.movements {
		if m.Type == movementType && (last == nil || m.Code > *last) {
			code := m.Code
			last = &code
		}
	}
	return last, nil
}

type writeOffRepo struct{ s *memStore }

func (r writeOffRepo) Create(ctx context.Context, w *entity.WriteOff) error {
	w.ID = r.s.nextID()
	r.s.writeOffs = append(r.s.writeOffs, *w)
	return nil
}

func (r writeOffRepo) Latest(ctx context.Context, assignmentID int64) (*entity.WriteOff, error) {
	for i := len(r.s.writeOffs) - 1; i >= 0; i-- {
		if r.s.writeOffs[i].AssignmentID == assignmentID {
			w := r.s.writeOffs[i]
			return &w, nil
		}
	}
	return nil, nil
}

type fakePDF struct {
	report KardexReport
}

func (f *fakePDF) GenerateKardexPDF(ctx context.Context, report KardexReport) ([]byte, error) {
	f.report = report
	return []byte("%PDF-fake"), nil
}
