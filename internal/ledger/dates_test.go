package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
)

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2025-06-15")
	require.True(t, ok)
	assert.Equal(t, 15, d.Day())

	// Imported records sometimes carry a trailing time part.
	d, ok = ParseDate("2025-06-15T10:30:00Z")
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", d.Format(DateLayout))

	_, ok = ParseDate("15/06/2025")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate(" 2025-06-15 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", got)

	_, err = NormalizeDate("not-a-date")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange("2025-06-15", "2025-06-01", "2025-06-30"))
	assert.True(t, InRange("2025-06-01", "2025-06-01", "2025-06-30"))
	assert.True(t, InRange("2025-06-30", "2025-06-01", "2025-06-30"))
	assert.False(t, InRange("2025-05-31", "2025-06-01", "2025-06-30"))
	assert.False(t, InRange("2025-07-01", "2025-06-01", "2025-06-30"))

	// Open bounds.
	assert.True(t, InRange("2025-06-15", "", ""))
	assert.True(t, InRange("2025-06-15", "2025-06-01", ""))
	assert.False(t, InRange("2025-06-15", "", "2025-05-31"))

	// Comparison is on parsed dates, not strings: "2025-2-9" style inputs
	// would sort wrong lexicographically but do not parse at all, and an
	// unparseable date only passes an unconstrained filter.
	assert.True(t, InRange("garbage", "", ""))
	assert.False(t, InRange("garbage", "2025-01-01", ""))
}
