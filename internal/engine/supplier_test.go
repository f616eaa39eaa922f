package engine

import (
	"testing"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
)

func item(identity, name, code, unit string) domain.ReconciledItem {
	return domain.ReconciledItem{
		Identity:    identity,
		DisplayName: name,
		ItemCode:    code,
		Unit:        unit,
	}
}

func entry(identity, name, code, unit string) domain.SupplierCatalogEntry {
	return domain.SupplierCatalogEntry{
		Identity:    identity,
		DisplayName: name,
		ItemCode:    code,
		Unit:        unit,
	}
}

func TestAttribute_NoCatalogsGivesUnknown(t *testing.T) {
	out := Attribute([]domain.ReconciledItem{item("tomato", "Tomato", "", "")}, nil, true)
	if out[0].Supplier != domain.SupplierUnknown {
		t.Errorf("supplier = %q, want %q when no catalogs supplied", out[0].Supplier, domain.SupplierUnknown)
	}
}

func TestAttribute_NoMatchGivesOther(t *testing.T) {
	catalogs := []domain.SupplierCatalog{
		{Label: "FreshFarm", Entries: []domain.SupplierCatalogEntry{entry("onion", "Onion", "O01", "KG")}},
	}

	out := Attribute([]domain.ReconciledItem{item("tomato", "Tomato", "", "")}, catalogs, false)
	if out[0].Supplier != domain.SupplierOther {
		t.Errorf("supplier = %q, want %q when catalogs supplied but none match", out[0].Supplier, domain.SupplierOther)
	}
}

func TestAttribute_ExactMatchAndBackfill(t *testing.T) {
	catalogs := []domain.SupplierCatalog{
		{Label: "FreshFarm", Entries: []domain.SupplierCatalogEntry{entry("tomato", "Tomato", "T01", "KG")}},
	}

	out := Attribute([]domain.ReconciledItem{item("tomato", "Tomato", "", "")}, catalogs, false)
	if out[0].Supplier != "FreshFarm" {
		t.Errorf("supplier = %q, want FreshFarm", out[0].Supplier)
	}
	if out[0].ItemCode != "T01" || out[0].Unit != "KG" {
		t.Errorf("catalog metadata not backfilled: %+v", out[0])
	}
}

func TestAttribute_BackfillDoesNotOverwrite(t *testing.T) {
	catalogs := []domain.SupplierCatalog{
		{Label: "FreshFarm", Entries: []domain.SupplierCatalogEntry{entry("tomato", "Tomato", "T99", "Case")}},
	}

	out := Attribute([]domain.ReconciledItem{item("tomato", "Tomato", "T01", "KG")}, catalogs, false)
	if out[0].ItemCode != "T01" || out[0].Unit != "KG" {
		t.Errorf("item's own metadata must win over catalog: %+v", out[0])
	}
}

func TestAttribute_PriorityOrder(t *testing.T) {
	catalogs := []domain.SupplierCatalog{
		{Label: "First", Entries: []domain.SupplierCatalogEntry{entry("tomato", "Tomato", "A", "")}},
		{Label: "Second", Entries: []domain.SupplierCatalogEntry{entry("tomato", "Tomato", "B", "")}},
	}

	out := Attribute([]domain.ReconciledItem{item("tomato", "Tomato", "", "")}, catalogs, false)
	if out[0].Supplier != "First" {
		t.Errorf("supplier = %q, want First (catalog priority order)", out[0].Supplier)
	}
	if out[0].ItemCode != "A" {
		t.Errorf("item code = %q, want A", out[0].ItemCode)
	}
}

func TestAttribute_ExactBeatsSubstringAcrossCatalogs(t *testing.T) {
	// First catalog only matches by substring, second matches exactly; the
	// exact match must win even though the first catalog ranks higher.
	catalogs := []domain.SupplierCatalog{
		{Label: "Partial", Entries: []domain.SupplierCatalogEntry{entry("tomato grade a", "Tomato Grade A", "", "")}},
		{Label: "Exact", Entries: []domain.SupplierCatalogEntry{entry("tomato", "Tomato", "", "")}},
	}

	out := Attribute([]domain.ReconciledItem{item("tomato", "Tomato", "", "")}, catalogs, true)
	if out[0].Supplier != "Exact" {
		t.Errorf("supplier = %q, want Exact (exact match takes priority)", out[0].Supplier)
	}
}

func TestAttribute_SubstringFallback(t *testing.T) {
	catalogs := []domain.SupplierCatalog{
		{Label: "FreshFarm", Entries: []domain.SupplierCatalogEntry{entry("tomato grade a", "Tomato Grade A", "T01", "KG")}},
	}
	items := []domain.ReconciledItem{item("tomato", "Tomato", "", "")}

	withFallback := Attribute(items, catalogs, true)
	if withFallback[0].Supplier != "FreshFarm" {
		t.Errorf("substring fallback should match, got %q", withFallback[0].Supplier)
	}

	withoutFallback := Attribute(items, catalogs, false)
	if withoutFallback[0].Supplier != domain.SupplierOther {
		t.Errorf("disabled fallback should give %q, got %q", domain.SupplierOther, withoutFallback[0].Supplier)
	}
}
