package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockledger/internal/domain"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "PI", Prefix(domain.InvoicePurchase, domain.SchemeShort))
	assert.Equal(t, "SI", Prefix(domain.InvoiceSales, domain.SchemeShort))
	assert.Equal(t, "PUR", Prefix(domain.InvoicePurchase, domain.SchemeLong))
	assert.Equal(t, "SAL", Prefix(domain.InvoiceSales, domain.SchemeLong))
}

func TestSuffix(t *testing.T) {
	n, ok := Suffix("PI0047", "PI")
	assert.True(t, ok)
	assert.Equal(t, int64(47), n)

	_, ok = Suffix("PI", "PI")
	assert.False(t, ok)

	_, ok = Suffix("PIABC", "PI")
	assert.False(t, ok)

	_, ok = Suffix("SI0047", "PI")
	assert.False(t, ok)

	// Leading/trailing whitespace from hand-entered numbers.
	n, ok = Suffix("  PI0003 ", "PI")
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)
}

func TestNext(t *testing.T) {
	numbers := []string{"PI0001", "PI0047", "PI0012", "SI0099", "garbage", ""}
	assert.Equal(t, "PI0048", Next(numbers, "PI"))

	// Malformed and foreign-prefix numbers are ignored entirely.
	assert.Equal(t, "SI0100", Next(numbers, "SI"))

	// No candidates: sequences start at 1.
	assert.Equal(t, "PUR0001", Next(nil, "PUR"))
}

func TestFormat_Padding(t *testing.T) {
	assert.Equal(t, "PI0007", Format("PI", 7))
	assert.Equal(t, "SAL0123", Format("SAL", 123))
	// Values past four digits widen rather than truncate.
	assert.Equal(t, "PI12345", Format("PI", 12345))
}
