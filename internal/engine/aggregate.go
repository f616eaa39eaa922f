package engine

import "github.com/TiwariPiyush2510/Par-Stock/internal/domain"

// Aggregate groups consumption records by item identity, sums quantities and
// derives the daily usage rate from the fixed period length. Output order
// follows the first appearance of each identity in the input, and descriptive
// fields (display name, item code, unit) keep the first non-empty value seen.
//
// With strict set, duplicate rows that disagree on a non-empty item code or
// unit return AmbiguousPeriodDataError instead of the first-seen tie-break.
func Aggregate(records []domain.ConsumptionRecord, periodDays float64, strict bool) ([]domain.AggregatedUsage, error) {
	byIdentity := make(map[string]int, len(records))
	out := make([]domain.AggregatedUsage, 0, len(records))

	for _, rec := range records {
		if rec.Identity == "" {
			continue
		}

		i, seen := byIdentity[rec.Identity]
		if !seen {
			byIdentity[rec.Identity] = len(out)
			out = append(out, domain.AggregatedUsage{
				Identity:      rec.Identity,
				DisplayName:   rec.DisplayName,
				ItemCode:      rec.ItemCode,
				Unit:          rec.Unit,
				TotalQuantity: rec.Quantity,
			})
			continue
		}

		agg := &out[i]
		agg.TotalQuantity += rec.Quantity

		if strict {
			if rec.ItemCode != "" && agg.ItemCode != "" && rec.ItemCode != agg.ItemCode {
				return nil, &domain.AmbiguousPeriodDataError{Identity: rec.Identity, Field: "item code"}
			}
			if rec.Unit != "" && agg.Unit != "" && rec.Unit != agg.Unit {
				return nil, &domain.AmbiguousPeriodDataError{Identity: rec.Identity, Field: "unit"}
			}
		}
		if agg.ItemCode == "" {
			agg.ItemCode = rec.ItemCode
		}
		if agg.Unit == "" {
			agg.Unit = rec.Unit
		}
	}

	for i := range out {
		out[i].DailyRate = out[i].TotalQuantity / periodDays
	}

	return out, nil
}
