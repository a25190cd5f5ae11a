package domain

// RecordKind tags the three stock record variants.
type RecordKind string

const (
	KindOpening RecordKind = "opening"
	KindInward  RecordKind = "inward"
	KindOutward RecordKind = "outward"
)

// AllRecordKinds lists the kinds in their canonical order.
var AllRecordKinds = []RecordKind{KindOpening, KindInward, KindOutward}

// ParseRecordKind validates a kind string from a route or query parameter.
func ParseRecordKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindOpening, KindInward, KindOutward:
		return RecordKind(s), nil
	}
	return "", ErrInvalidRecordKind
}

// ContributesToValuation reports whether quantities of this kind feed the
// weighted-average cost. Outward movements reduce balance but are costed at
// the existing average, not their own sale rate.
func (k RecordKind) ContributesToValuation() bool {
	return k != KindOutward
}

// PartyType classifies a counterparty. The classification governs which
// record kinds may reference the party by convention; it is not enforced.
type PartyType string

const (
	PartyTypePurchase PartyType = "purchase"
	PartyTypeSales    PartyType = "sales"
)

// GroupBy selects the summary bucket dimension.
type GroupBy string

const (
	GroupByItem GroupBy = "item"
	GroupByHSN  GroupBy = "hsn"
	GroupByNone GroupBy = "none"
)

// ParseGroupBy maps a query parameter to a grouping mode, defaulting to the
// composite key when empty or unrecognized.
func ParseGroupBy(s string) GroupBy {
	switch GroupBy(s) {
	case GroupByItem, GroupByHSN:
		return GroupBy(s)
	}
	return GroupByNone
}

// Period is a named reporting window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a query parameter to a period, defaulting to month.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s)
	}
	return PeriodMonth
}

// InvoiceType selects an invoice numbering sequence.
type InvoiceType string

const (
	InvoicePurchase InvoiceType = "purchase"
	InvoiceSales    InvoiceType = "sales"
)

// ParseInvoiceType maps a query parameter to an invoice type, defaulting to
// purchase.
func ParseInvoiceType(s string) InvoiceType {
	if InvoiceType(s) == InvoiceSales {
		return InvoiceSales
	}
	return InvoicePurchase
}

// NumberingScheme selects one of the two independent invoice number
// namespaces. The short scheme uses PI/SI prefixes, the long scheme PUR/SAL.
type NumberingScheme string

const (
	SchemeShort NumberingScheme = "short"
	SchemeLong  NumberingScheme = "long"
)

// ParseNumberingScheme maps a config value to a scheme, defaulting to short.
func ParseNumberingScheme(s string) NumberingScheme {
	if NumberingScheme(s) == SchemeLong {
		return SchemeLong
	}
	return SchemeShort
}
