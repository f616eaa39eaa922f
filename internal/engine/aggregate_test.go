package engine

import (
	"errors"
	"testing"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
)

func rec(identity, name, code, unit string, qty float64) domain.ConsumptionRecord {
	return domain.ConsumptionRecord{
		Identity:    identity,
		DisplayName: name,
		ItemCode:    code,
		Unit:        unit,
		Quantity:    qty,
	}
}

func TestAggregate_SumsAndDailyRate(t *testing.T) {
	records := []domain.ConsumptionRecord{
		rec("tomato", "Tomato", "T01", "KG", 30),
		rec("milk", "Milk", "M01", "L", 14),
		rec("tomato", "Tomato", "T01", "KG", 40),
	}

	out, err := Aggregate(records, 7, false)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d aggregates, want 2", len(out))
	}
	if out[0].Identity != "tomato" || out[1].Identity != "milk" {
		t.Fatalf("ingestion order not preserved: %v, %v", out[0].Identity, out[1].Identity)
	}
	if out[0].TotalQuantity != 70 {
		t.Errorf("tomato total = %v, want 70", out[0].TotalQuantity)
	}
	if out[0].DailyRate != 10 {
		t.Errorf("tomato daily rate = %v, want 10", out[0].DailyRate)
	}
	if out[1].DailyRate != 2 {
		t.Errorf("milk daily rate = %v, want 2", out[1].DailyRate)
	}
}

func TestAggregate_NonNegativeRates(t *testing.T) {
	records := []domain.ConsumptionRecord{
		rec("a", "A", "", "", 0),
		rec("b", "B", "", "", 0.01),
	}
	out, err := Aggregate(records, 30, false)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	for _, agg := range out {
		if agg.DailyRate < 0 {
			t.Errorf("daily rate for %q is negative: %v", agg.Identity, agg.DailyRate)
		}
	}
}

func TestAggregate_FirstSeenMetadataWins(t *testing.T) {
	records := []domain.ConsumptionRecord{
		rec("tomato", "Tomato", "T01", "KG", 10),
		rec("tomato", "TOMATO", "T99", "Case", 5),
	}

	out, err := Aggregate(records, 7, false)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if out[0].DisplayName != "Tomato" || out[0].ItemCode != "T01" || out[0].Unit != "KG" {
		t.Errorf("first-seen metadata lost: %+v", out[0])
	}
}

func TestAggregate_BackfillsEmptyMetadata(t *testing.T) {
	records := []domain.ConsumptionRecord{
		rec("tomato", "Tomato", "", "", 10),
		rec("tomato", "Tomato", "T01", "KG", 5),
	}

	out, err := Aggregate(records, 7, false)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if out[0].ItemCode != "T01" || out[0].Unit != "KG" {
		t.Errorf("empty metadata not backfilled: %+v", out[0])
	}
}

func TestAggregate_SkipsBlankIdentity(t *testing.T) {
	records := []domain.ConsumptionRecord{
		rec("", "", "", "", 100),
		rec("tomato", "Tomato", "", "", 7),
	}

	out, err := Aggregate(records, 7, false)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(out) != 1 || out[0].Identity != "tomato" {
		t.Fatalf("blank identity rows must be dropped, got %+v", out)
	}
}

func TestAggregate_StrictMetadataConflict(t *testing.T) {
	records := []domain.ConsumptionRecord{
		rec("tomato", "Tomato", "T01", "KG", 10),
		rec("tomato", "Tomato", "T02", "KG", 5),
	}

	_, err := Aggregate(records, 7, true)
	var ambiguous *domain.AmbiguousPeriodDataError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("want AmbiguousPeriodDataError, got %v", err)
	}
	if ambiguous.Identity != "tomato" {
		t.Errorf("error identity = %q, want tomato", ambiguous.Identity)
	}

	// non-strict resolves the same input by first-seen
	out, err := Aggregate(records, 7, false)
	if err != nil {
		t.Fatalf("non-strict Aggregate returned error: %v", err)
	}
	if out[0].ItemCode != "T01" {
		t.Errorf("item code = %q, want T01", out[0].ItemCode)
	}
}
