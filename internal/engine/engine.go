package engine

import "github.com/TiwariPiyush2510/Par-Stock/internal/domain"

// Options control the engine's policy knobs. Zero values give the reference
// behavior except SafetyFactor, which is normalized to 1.
type Options struct {
	// SafetyFactor scales suggested par before stock reconciliation. Some
	// sites run with a margin of 2 or 3; it is an explicit setting, never
	// baked in.
	SafetyFactor float64
	// Passthrough makes final stock needed equal suggested par, ignoring
	// stock figures entirely.
	Passthrough bool
	// SubstringMatch enables the substring fallback in supplier attribution
	// after exact matching fails.
	SubstringMatch bool
	// StrictMetadata turns conflicting duplicate-row metadata within one
	// period into an error instead of first-seen-wins.
	StrictMetadata bool
}

// Engine runs the full par-stock pipeline: aggregation per period, cross
// period reconciliation, supplier attribution and replenishment calculation.
// It is a pure transform; every request gets its own input and output.
type Engine struct {
	opts Options
	calc *ReplenishmentCalculator
}

func New(opts Options) *Engine {
	return &Engine{
		opts: opts,
		calc: NewReplenishmentCalculator(opts.SafetyFactor, opts.Passthrough),
	}
}

// PlanInput is one request's worth of already-ingested data. Catalogs are in
// priority order. Stock figures are keyed by normalized identity and default
// to zero for absent items.
type PlanInput struct {
	Weekly   []domain.ConsumptionRecord
	Monthly  []domain.ConsumptionRecord
	Catalogs []domain.SupplierCatalog
	Stock    map[string]domain.StockFigures
}

// ComputePlan produces one FinalStockPlan row per item identity present in
// either consumption report.
func (e *Engine) ComputePlan(in PlanInput) ([]domain.FinalStockPlan, error) {
	weekly, err := Aggregate(in.Weekly, domain.PeriodWeekly.Days(), e.opts.StrictMetadata)
	if err != nil {
		return nil, err
	}
	monthly, err := Aggregate(in.Monthly, domain.PeriodMonthly.Days(), e.opts.StrictMetadata)
	if err != nil {
		return nil, err
	}

	items := Reconcile(weekly, monthly)
	attributed := Attribute(items, in.Catalogs, e.opts.SubstringMatch)

	plans := make([]domain.FinalStockPlan, 0, len(attributed))
	for _, a := range attributed {
		figures := in.Stock[a.Identity]
		plans = append(plans, domain.FinalStockPlan{
			Item:             a.DisplayName,
			ItemCode:         a.ItemCode,
			Unit:             a.Unit,
			SuggestedPar:     a.SuggestedPar,
			StockInHand:      figures.StockInHand,
			ExpectedDelivery: figures.ExpectedDelivery,
			FinalStockNeeded: e.calc.FinalNeeded(a.SuggestedPar, figures.StockInHand, figures.ExpectedDelivery),
			Supplier:         a.Supplier,
		})
	}

	return plans, nil
}
