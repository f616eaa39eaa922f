package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/TiwariPiyush2510/Par-Stock/internal/catalog"
	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
	"github.com/TiwariPiyush2510/Par-Stock/internal/engine"
)

func newTestService() *PlanService {
	eng := engine.New(engine.Options{SafetyFactor: 1, SubstringMatch: true})
	return NewPlanService(eng, catalog.NewMemoryStore())
}

func upload(name, data string) Upload {
	return Upload{Name: name, Reader: strings.NewReader(data)}
}

func TestCalculate_EndToEnd(t *testing.T) {
	svc := newTestService()

	stock := upload("stock.csv", "Item,Stock In Hand,Expected Delivery\nTomato,6,6\n")
	req := PlanRequest{
		Weekly:  upload("weekly.csv", "Item,Item Code,Unit,Quantity\nTomato,T01,KG,70\n,,,5\n"),
		Monthly: upload("monthly.csv", "Item,Quantity\nTomato,150\nMilk,60\n"),
		Stock:   &stock,
		Suppliers: []Upload{
			{
				Name:   "freshfarm.csv",
				Label:  "FreshFarm",
				Reader: strings.NewReader("Item,Code,Unit\nTomato,T01,KG\n"),
			},
		},
	}

	result, err := svc.Calculate(context.Background(), req)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if result.DroppedRows != 1 {
		t.Errorf("dropped rows = %d, want 1", result.DroppedRows)
	}
	if len(result.Plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(result.Plans))
	}

	tomato := result.Plans[0]
	if tomato.SuggestedPar != 10.00 {
		t.Errorf("tomato suggested par = %v, want 10.00", tomato.SuggestedPar)
	}
	// max(0, 2*10 - 6 - 6) = 8
	if tomato.FinalStockNeeded != 8.00 {
		t.Errorf("tomato final needed = %v, want 8.00", tomato.FinalStockNeeded)
	}
	if tomato.Supplier != "FreshFarm" {
		t.Errorf("tomato supplier = %q, want FreshFarm", tomato.Supplier)
	}

	milk := result.Plans[1]
	if milk.SuggestedPar != 2.00 || milk.Supplier != domain.SupplierOther {
		t.Errorf("unexpected milk plan: %+v", milk)
	}
}

func TestCalculate_MalformedInputAbortsWholeRequest(t *testing.T) {
	svc := newTestService()

	req := PlanRequest{
		Weekly:  upload("weekly.csv", "Item,Unit\nTomato,KG\n"), // no quantity column
		Monthly: upload("monthly.csv", "Item,Quantity\nMilk,60\n"),
	}

	result, err := svc.Calculate(context.Background(), req)
	var malformed *domain.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedInputError, got %v", err)
	}
	if malformed.Input != "weekly.csv" {
		t.Errorf("error must identify the failing input, got %q", malformed.Input)
	}
	if result != nil {
		t.Error("no partial results on abort")
	}
}

func TestCalculate_StoredCatalogByID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	entries, err := svc.StoreCatalog(ctx, "freshfarm", Upload{
		Name:   "freshfarm.csv",
		Label:  "FreshFarm",
		Reader: strings.NewReader("Item,Code\nTomato,T01\n"),
	})
	if err != nil {
		t.Fatalf("StoreCatalog returned error: %v", err)
	}
	if entries != 1 {
		t.Errorf("stored entries = %d, want 1", entries)
	}

	result, err := svc.Calculate(ctx, PlanRequest{
		Weekly:     upload("weekly.csv", "Item,Quantity\nTomato,70\n"),
		Monthly:    upload("monthly.csv", "Item,Quantity\nTomato,150\n"),
		CatalogIDs: []string{"freshfarm"},
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if result.Plans[0].Supplier != "FreshFarm" {
		t.Errorf("supplier = %q, want FreshFarm from stored catalog", result.Plans[0].Supplier)
	}
}

func TestCalculate_UnknownCatalogID(t *testing.T) {
	svc := newTestService()

	_, err := svc.Calculate(context.Background(), PlanRequest{
		Weekly:     upload("weekly.csv", "Item,Quantity\nTomato,70\n"),
		Monthly:    upload("monthly.csv", "Item,Quantity\nTomato,150\n"),
		CatalogIDs: []string{"missing"},
	})
	var malformed *domain.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedInputError for unknown catalog id, got %v", err)
	}
}

func TestCalculate_NoCatalogsAtAll(t *testing.T) {
	svc := newTestService()

	result, err := svc.Calculate(context.Background(), PlanRequest{
		Weekly:  upload("weekly.csv", "Item,Quantity\nTomato,70\n"),
		Monthly: upload("monthly.csv", "Item,Quantity\nTomato,150\n"),
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if result.Plans[0].Supplier != domain.SupplierUnknown {
		t.Errorf("supplier = %q, want %q", result.Plans[0].Supplier, domain.SupplierUnknown)
	}
}
