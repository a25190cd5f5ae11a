package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItem_ComputeTotal(t *testing.T) {
	li := LineItem{
		Quantity:        AmountFromInt(10),
		Rate:            AmountFromInt(100),
		DiscountPercent: AmountFromInt(5),
	}
	assert.Equal(t, "950", li.ComputeTotal().String())

	li.DiscountPercent = Amount{}
	assert.Equal(t, "1000", li.ComputeTotal().String())
}

func TestStockRecord_RecomputeTotals(t *testing.T) {
	r := StockRecord{
		Items: LineItems{
			{Quantity: AmountFromInt(10), Rate: AmountFromInt(100)},
			{Quantity: AmountFromInt(5), Rate: AmountFromInt(20)},
		},
		CGSTPercent: AmountFromString("9"),
		SGSTPercent: AmountFromString("9"),
		// Client-sent totals are overwritten.
		Subtotal:   AmountFromInt(999999),
		GrandTotal: AmountFromInt(999999),
	}
	r.RecomputeTotals()

	assert.Equal(t, "1000", r.Items[0].Total.String())
	assert.Equal(t, "100", r.Items[1].Total.String())
	assert.Equal(t, "1100", r.Subtotal.String())
	assert.Equal(t, "1298", r.GrandTotal.String())
}

func TestLineItems_JSONBRoundTrip(t *testing.T) {
	items := LineItems{{Name: "Widget", HSNCode: "8471", Quantity: AmountFromInt(3), Rate: AmountFromString("10.5")}}

	value, err := items.Value()
	require.NoError(t, err)

	var scanned LineItems
	require.NoError(t, scanned.Scan(value))
	require.Len(t, scanned, 1)
	assert.Equal(t, "Widget", scanned[0].Name)
	assert.True(t, scanned[0].Rate.Equal(AmountFromString("10.5").Decimal))
}

func TestLineItems_NilValue(t *testing.T) {
	var items LineItems
	value, err := items.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestStockRecord_JSONFieldNames(t *testing.T) {
	r := StockRecord{Kind: KindInward, Date: "2025-01-01"}
	out, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "inward", m["type"])
	assert.Contains(t, m, "invoiceNumber")
	assert.Contains(t, m, "grandTotal")
	assert.NotContains(t, m, "kind")
}
