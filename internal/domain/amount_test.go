package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalLenient(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`42`, "42"},
		{`42.5`, "42.5"},
		{`"42.5"`, "42.5"},
		{`""`, "0"},
		{`null`, "0"},
		{`"abc"`, "0"},
		{`true`, "0"},
	}
	for _, tc := range cases {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(tc.in), &a), tc.in)
		assert.Equal(t, tc.want, a.String(), tc.in)
	}
}

func TestAmount_MarshalPlainNumber(t *testing.T) {
	out, err := json.Marshal(AmountFromString("1234.56"))
	require.NoError(t, err)
	assert.Equal(t, "1234.56", string(out))
}

func TestAmountFromString(t *testing.T) {
	assert.Equal(t, "10.5", AmountFromString(" 10.5 ").String())
	assert.True(t, AmountFromString("not a number").IsZero())
	assert.True(t, AmountFromString("").IsZero())
}
