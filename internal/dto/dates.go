package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

const dateOnly = "2006-01-02"

// ParseDate parses a YYYY-MM-DD or RFC 3339 value. An empty value yields the zero time.
// With endOfDay set, a date-only value is moved to the last instant of that day.
func ParseDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		if endOfDay {
			return t.Add(24*time.Hour - time.Nanosecond), nil
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", raw)
	}
	return t, nil
}

// ParseDateRange parses from/to query values into an inclusive range.
func ParseDateRange(from, to string) (domain.DateRange, error) {
	f, err := ParseDate(from, false)
	if err != nil {
		return domain.DateRange{}, err
	}
	t, err := ParseDate(to, true)
	if err != nil {
		return domain.DateRange{}, err
	}
	if !f.IsZero() && !t.IsZero() && t.Before(f) {
		return domain.DateRange{}, fmt.Errorf("'to' must not be before 'from'")
	}
	return domain.DateRange{From: f, To: t}, nil
}
