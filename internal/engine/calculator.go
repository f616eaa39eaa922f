package engine

import "math"

// ReplenishmentCalculator derives the final order quantity from suggested
// par, stock on hand and expected incoming delivery.
//
// The reference formula is the single clamped expression
//
//	final = max(0, 2*par - stockInHand - expectedDelivery)
//
// which covers both the shortage and the surplus case continuously: when
// available stock equals par, the order is exactly one par. Passthrough mode
// instead reports the suggested par unchanged, for callers that reconcile
// stock on their side. The safety factor scales par before reconciliation and
// defaults to 1.
type ReplenishmentCalculator struct {
	safetyFactor float64
	passthrough  bool
}

// NewReplenishmentCalculator creates a calculator. A non-positive safety
// factor falls back to 1.
func NewReplenishmentCalculator(safetyFactor float64, passthrough bool) *ReplenishmentCalculator {
	if safetyFactor <= 0 {
		safetyFactor = 1
	}
	return &ReplenishmentCalculator{
		safetyFactor: safetyFactor,
		passthrough:  passthrough,
	}
}

// FinalNeeded computes the recommended order quantity, rounded to two
// decimals and never negative.
func (c *ReplenishmentCalculator) FinalNeeded(suggestedPar, stockInHand, expectedDelivery float64) float64 {
	par := suggestedPar * c.safetyFactor
	if c.passthrough {
		return roundFloat(par, 2)
	}

	return roundFloat(math.Max(0, 2*par-stockInHand-expectedDelivery), 2)
}
