// Package numbering derives sequential invoice numbers. Two independent
// prefix namespaces coexist: the short scheme (PI/SI) and the long scheme
// (PUR/SAL). Sequences never collide across schemes or types.
package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"stockledger/internal/domain"
)

// Prefix returns the invoice number prefix for a type under a scheme.
func Prefix(t domain.InvoiceType, scheme domain.NumberingScheme) string {
	if scheme == domain.SchemeLong {
		if t == domain.InvoiceSales {
			return "SAL"
		}
		return "PUR"
	}
	if t == domain.InvoiceSales {
		return "SI"
	}
	return "PI"
}

// Suffix extracts the numeric suffix of an invoice number under prefix.
// Numbers that do not match prefix + digits are not candidates.
func Suffix(number, prefix string) (int64, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(number), prefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MaxSuffix returns the largest numeric suffix among candidates, or zero
// when none match.
func MaxSuffix(numbers []string, prefix string) int64 {
	var max int64
	for _, num := range numbers {
		if n, ok := Suffix(num, prefix); ok && n > max {
			max = n
		}
	}
	return max
}

// Format renders a sequence value as a zero-padded invoice number.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}

// Next returns the invoice number following the highest existing candidate,
// starting at 1 when none exist.
func Next(numbers []string, prefix string) string {
	return Format(prefix, MaxSuffix(numbers, prefix)+1)
}
