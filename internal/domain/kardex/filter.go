package kardex

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// Formatos aceptados para fechas de filtro, en orden de prueba.
var dateLayouts = []string{
	"2/1/2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate interpreta una fecha de filtro en formato d/m/Y o Y-m-d (también acepta
// fecha-hora). Cadena vacía devuelve nil sin error.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := truncateDay(t)
			return &d, nil
		}
	}
	return nil, fmt.Errorf("%w: fecha %q no reconocida", domain.ErrInvalidInput, s)
}

// DateRange rango inclusivo por día calendario. Extremos nil no limitan.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero indica que no hay filtro.
func (r DateRange) IsZero() bool { return r.From == nil && r.To == nil }

// Contains compara solo la parte de fecha (Y-m-d) de t.
func (r DateRange) Contains(t time.Time) bool {
	day := truncateDay(t)
	if r.From != nil && day.Before(truncateDay(*r.From)) {
		return false
	}
	if r.To != nil && day.After(truncateDay(*r.To)) {
		return false
	}
	return true
}

// Filter recorta las filas al rango sin recalcular saldos: los saldos reflejan
// todo el historial, no solo la ventana.
func Filter(rows []Row, r DateRange) []Row {
	if r.IsZero() {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if r.Contains(row.Date) {
			out = append(out, row)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
