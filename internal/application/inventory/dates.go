package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
	"2/1/2006",
}

// parseTimestamp interpreta la fecha de un documento; vacía usa fallback.
func parseTimestamp(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
}

func parseOptionalTimestamp(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseTimestamp(s, time.Time{})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
