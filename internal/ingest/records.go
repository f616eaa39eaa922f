package ingest

import (
	"strconv"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
)

// Column aliases observed across source report formats. Resolved once here;
// nothing downstream branches on column presence.
var (
	itemAliases     = []string{"item", "item name", "name", "product", "item description"}
	quantityAliases = []string{"quantity", "qty", "consumption", "consumed"}
	codeAliases     = []string{"item code", "code", "sku"}
	unitAliases     = []string{"unit", "uom", "unit of measure"}
	stockAliases    = []string{"stock in hand", "stock", "on hand", "current stock"}
	deliveryAliases = []string{"expected delivery", "incoming", "delivery", "expected"}
)

// ParseConsumption extracts consumption records from a decoded table. Rows
// whose item name normalizes to blank are dropped and counted, not failed.
// A missing item or quantity column aborts with MalformedInputError.
func ParseConsumption(t *Table) ([]domain.ConsumptionRecord, int, error) {
	itemCol, ok := t.Column(itemAliases...)
	if !ok {
		return nil, 0, &domain.MalformedInputError{Input: t.Source, Reason: "missing item name column"}
	}
	qtyCol, ok := t.Column(quantityAliases...)
	if !ok {
		return nil, 0, &domain.MalformedInputError{Input: t.Source, Reason: "missing quantity column"}
	}
	codeCol, hasCode := t.Column(codeAliases...)
	unitCol, hasUnit := t.Column(unitAliases...)

	records := make([]domain.ConsumptionRecord, 0, len(t.Rows))
	dropped := 0
	for _, row := range t.Rows {
		name := t.Cell(row, itemCol)
		identity := domain.NormalizeIdentity(name)
		if identity == "" {
			dropped++
			continue
		}

		rec := domain.ConsumptionRecord{
			Identity:    identity,
			DisplayName: name,
			Quantity:    parseFloat(t.Cell(row, qtyCol)),
		}
		if hasCode {
			rec.ItemCode = t.Cell(row, codeCol)
		}
		if hasUnit {
			rec.Unit = t.Cell(row, unitCol)
		}
		records = append(records, rec)
	}

	return records, dropped, nil
}

// ParseCatalog extracts supplier catalog entries from a decoded table. The
// supplier label comes from the table's provenance, so only the item name
// column is required.
func ParseCatalog(t *Table, label string) (domain.SupplierCatalog, int, error) {
	itemCol, ok := t.Column(itemAliases...)
	if !ok {
		return domain.SupplierCatalog{}, 0, &domain.MalformedInputError{Input: t.Source, Reason: "missing item name column"}
	}
	codeCol, hasCode := t.Column(codeAliases...)
	unitCol, hasUnit := t.Column(unitAliases...)

	catalog := domain.SupplierCatalog{Label: label}
	dropped := 0
	for _, row := range t.Rows {
		name := t.Cell(row, itemCol)
		identity := domain.NormalizeIdentity(name)
		if identity == "" {
			dropped++
			continue
		}

		entry := domain.SupplierCatalogEntry{
			Identity:    identity,
			DisplayName: name,
		}
		if hasCode {
			entry.ItemCode = t.Cell(row, codeCol)
		}
		if hasUnit {
			entry.Unit = t.Cell(row, unitCol)
		}
		catalog.Entries = append(catalog.Entries, entry)
	}

	return catalog, dropped, nil
}

// ParseStock extracts per-item stock figures from an on-hand report. Later
// rows for the same identity overwrite earlier ones, matching how stock
// exports list the latest count last.
func ParseStock(t *Table) (map[string]domain.StockFigures, int, error) {
	itemCol, ok := t.Column(itemAliases...)
	if !ok {
		return nil, 0, &domain.MalformedInputError{Input: t.Source, Reason: "missing item name column"}
	}
	stockCol, ok := t.Column(stockAliases...)
	if !ok {
		return nil, 0, &domain.MalformedInputError{Input: t.Source, Reason: "missing stock in hand column"}
	}
	deliveryCol, hasDelivery := t.Column(deliveryAliases...)

	figures := make(map[string]domain.StockFigures, len(t.Rows))
	dropped := 0
	for _, row := range t.Rows {
		identity := domain.NormalizeIdentity(t.Cell(row, itemCol))
		if identity == "" {
			dropped++
			continue
		}

		fig := domain.StockFigures{StockInHand: parseFloat(t.Cell(row, stockCol))}
		if hasDelivery {
			fig.ExpectedDelivery = parseFloat(t.Cell(row, deliveryCol))
		}
		figures[identity] = fig
	}

	return figures, dropped, nil
}

// parseFloat tolerates blank and non-numeric cells, treating them as zero the
// way the source reports do for empty quantity cells.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
