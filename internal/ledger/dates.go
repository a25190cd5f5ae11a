package ledger

import (
	"strings"
	"time"

	"stockledger/internal/domain"
)

// DateLayout is the canonical calendar date format for all stored records.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date, tolerating a trailing time part
// (records imported from older data sometimes carry full timestamps).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeDate validates a date from an API payload and reduces it to
// YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	t, ok := ParseDate(s)
	if !ok {
		return "", domain.ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}

// InRange reports whether date lies within [start, end], bounds inclusive
// and optional. Comparison is on parsed dates, never raw strings. A record
// date that does not parse passes only when no bound constrains it.
func InRange(date, start, end string) bool {
	d, ok := ParseDate(date)
	if !ok {
		return start == "" && end == ""
	}
	if start != "" {
		if s, sok := ParseDate(start); sok && d.Before(s) {
			return false
		}
	}
	if end != "" {
		if e, eok := ParseDate(end); eok && d.After(e) {
			return false
		}
	}
	return true
}
