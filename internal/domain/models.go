package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Party represents a supplier or customer.
type Party struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Contact   string    `db:"contact" json:"contact"`
	Email     string    `db:"email" json:"email"`
	GSTNumber string    `db:"gst_number" json:"gstNumber"`
	Type      PartyType `db:"type" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// LineItem is a single item line embedded in a stock record.
// Total is a derived, persisted field: quantity*rate*(1-discountPercent/100).
type LineItem struct {
	Name            string `json:"name"`
	HSNCode         string `json:"hsnCode"`
	Description     string `json:"description,omitempty"`
	Quantity        Amount `json:"quantity"`
	Rate            Amount `json:"rate"`
	DiscountPercent Amount `json:"discountPercent"`
	Total           Amount `json:"total"`
}

// ComputeTotal returns quantity*rate*(1-discountPercent/100).
func (li *LineItem) ComputeTotal() Amount {
	gross := li.Quantity.Mul(li.Rate.Decimal)
	discount := gross.Mul(li.DiscountPercent.Decimal).Div(hundred)
	return NewAmount(gross.Sub(discount))
}

// LineItems stores the ordered item lines of a record as a JSONB column.
type LineItems []LineItem

// Value implements driver.Valuer for JSONB storage.
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB storage.
func (l *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into LineItems", src)
}

// StockRecord is one of the three record variants, tagged by Kind.
// Date is always an ISO calendar date (YYYY-MM-DD).
type StockRecord struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Kind               RecordKind `db:"kind" json:"type"`
	PartyID            *uuid.UUID `db:"party_id" json:"partyId,omitempty"`
	InvoiceNumber      string     `db:"invoice_number" json:"invoiceNumber"`
	PartyInvoiceNumber string     `db:"party_invoice_number" json:"partyInvoiceNumber,omitempty"`
	Date               string     `db:"record_date" json:"date"`
	Items              LineItems  `db:"items" json:"items"`
	Subtotal           Amount     `db:"subtotal" json:"subtotal"`
	CGSTPercent        Amount     `db:"cgst_percent" json:"cgstPercent"`
	SGSTPercent        Amount     `db:"sgst_percent" json:"sgstPercent"`
	IGSTPercent        Amount     `db:"igst_percent" json:"igstPercent"`
	GrandTotal         Amount     `db:"grand_total" json:"grandTotal"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updatedAt"`
}

// RecomputeTotals derives every persisted total from the raw item fields:
// each line total, the subtotal, and the tax-inclusive grand total. Stored
// totals from the client are never trusted.
func (r *StockRecord) RecomputeTotals() {
	subtotal := Amount{}
	for i := range r.Items {
		r.Items[i].Total = r.Items[i].ComputeTotal()
		subtotal = NewAmount(subtotal.Add(r.Items[i].Total.Decimal))
	}
	r.Subtotal = subtotal
	taxPercent := r.CGSTPercent.Add(r.SGSTPercent.Decimal).Add(r.IGSTPercent.Decimal)
	r.GrandTotal = NewAmount(subtotal.Mul(one.Add(taxPercent.Div(hundred))))
}

// StockSummary is a derived per-key ledger bucket. It is recomputed on every
// query and never persisted.
type StockSummary struct {
	ItemName       string `json:"itemName"`
	HSNCode        string `json:"hsnCode"`
	OpeningStock   Amount `json:"openingStock"`
	TotalInward    Amount `json:"totalInward"`
	TotalOutward   Amount `json:"totalOutward"`
	TotalValue     Amount `json:"totalValue"`
	TotalQuantity  Amount `json:"totalQuantity"`
	CurrentBalance Amount `json:"currentBalance"`
	AverageRate    Amount `json:"averageRate"`
	StockValue     Amount `json:"stockValue"`
}

// Item is a distinct line item observed across the stock collections,
// carrying the rate it was first seen with.
type Item struct {
	Name    string `json:"name"`
	HSNCode string `json:"hsnCode"`
	Rate    Amount `json:"rate"`
}

// ItemSales ranks an item by outward revenue.
type ItemSales struct {
	Name     string `json:"name"`
	HSNCode  string `json:"hsnCode"`
	Quantity Amount `json:"quantity"`
	Revenue  Amount `json:"revenue"`
}

// PartyStats ranks a party by total transacted amount.
type PartyStats struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	TotalAmount      Amount `json:"totalAmount"`
	TransactionCount int    `json:"transactionCount"`
}

// MonthlyTrend is one month's purchase/sales bucket.
type MonthlyTrend struct {
	Month        string `json:"month"`
	Purchases    Amount `json:"purchases"`
	Sales        Amount `json:"sales"`
	Transactions int    `json:"transactions"`
}

// AnalyticsSummary holds the period totals and margin.
type AnalyticsSummary struct {
	TotalPurchases    Amount `json:"totalPurchases"`
	TotalSales        Amount `json:"totalSales"`
	TotalTransactions int    `json:"totalTransactions"`
	Profit            Amount `json:"profit"`
	ProfitMargin      Amount `json:"profitMargin"`
}

// DateRange is the resolved reporting window.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Analytics is the full analytics response object.
type Analytics struct {
	Summary       AnalyticsSummary `json:"summary"`
	TopItems      []ItemSales      `json:"topItems"`
	TopParties    []PartyStats     `json:"topParties"`
	MonthlyTrends []MonthlyTrend   `json:"monthlyTrends"`
	Period        Period           `json:"period"`
	DateRange     DateRange        `json:"dateRange"`
}

// DashboardStats holds the landing-page counters. TotalInward counts opening
// and inward records together, matching the dashboard's definition of
// incoming movements.
type DashboardStats struct {
	TotalParties int `json:"totalParties"`
	TotalItems   int `json:"totalItems"`
	TotalInward  int `json:"totalInward"`
	TotalOutward int `json:"totalOutward"`
}

// Invoice is a stock record resolved with its party, the payload an
// external invoice renderer consumes.
type Invoice struct {
	Record StockRecord `json:"record"`
	Party  *Party      `json:"party,omitempty"`
}

// User is a registered application user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Company      string    `db:"company" json:"company"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
