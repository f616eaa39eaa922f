package domain

// Period identifies the consumption report a record came from. The period
// fixes the divisor used to turn a period total into a daily usage rate:
// weekly reports cover exactly one week, monthly reports one calendar month.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Days returns the fixed length of the reporting period in days.
func (p Period) Days() float64 {
	if p == PeriodMonthly {
		return 30
	}
	return 7
}

// ConsumptionRecord is one row from a weekly or monthly consumption report
// after ingestion. Identity is the normalized matching key; DisplayName keeps
// the name exactly as it appeared in the source, for output only.
type ConsumptionRecord struct {
	Identity    string
	DisplayName string
	ItemCode    string
	Unit        string
	Quantity    float64
}

// AggregatedUsage is one row per distinct item identity within a single
// source period: the summed quantity and the derived daily rate.
type AggregatedUsage struct {
	Identity      string
	DisplayName   string
	ItemCode      string
	Unit          string
	TotalQuantity float64
	DailyRate     float64
}

// ReconciledItem is one row per item identity present in either the weekly or
// the monthly aggregate. A rate of 0 means the item produced no rows in that
// source, which is treated as zero measured consumption, not unknown.
type ReconciledItem struct {
	Identity         string
	DisplayName      string
	ItemCode         string
	Unit             string
	WeeklyDailyRate  float64
	MonthlyDailyRate float64
	SuggestedPar     float64
}

// SupplierCatalogEntry is one row from a supplier reference table.
type SupplierCatalogEntry struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"display_name"`
	ItemCode    string `json:"item_code"`
	Unit        string `json:"unit"`
}

// SupplierCatalog is a named supplier reference table. The label comes from
// the table's provenance (upload filename or stored catalog id), not from a
// column inside it.
type SupplierCatalog struct {
	Label   string                 `json:"label"`
	Entries []SupplierCatalogEntry `json:"entries"`
}

// StockFigures carries the caller-supplied on-hand stock and expected
// incoming delivery for one item. Both default to zero.
type StockFigures struct {
	StockInHand      float64
	ExpectedDelivery float64
}

// Supplier labels assigned when no catalog entry matches an item. The two
// cases are distinct: Other means catalogs were supplied but none matched,
// Unknown means the request carried no catalogs at all.
const (
	SupplierOther   = "Other"
	SupplierUnknown = "Unknown"
)

// FinalStockPlan is the output row for one item: suggested par reconciled
// against stock on hand and incoming deliveries. Built fresh per request,
// never persisted.
type FinalStockPlan struct {
	Item             string  `json:"item"`
	ItemCode         string  `json:"item_code"`
	Unit             string  `json:"unit"`
	SuggestedPar     float64 `json:"suggested_par"`
	StockInHand      float64 `json:"stock_in_hand"`
	ExpectedDelivery float64 `json:"expected_delivery"`
	FinalStockNeeded float64 `json:"final_stock_needed"`
	Supplier         string  `json:"supplier"`
}
