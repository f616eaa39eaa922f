package engine

import (
	"math"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
)

// Reconcile full-outer-joins the weekly and monthly aggregates on item
// identity. An identity missing from one side carries a daily rate of exactly
// zero there: an item with no measured consumption in a period legitimately
// produces no rows in that report. Suggested par is the higher of the two
// rates, rounded to two decimals. Descriptive fields prefer the weekly value,
// then the monthly one, then stay empty; weekly data is the more recent
// source for metadata when both exist.
//
// Output holds every identity from either side exactly once: weekly items in
// their ingestion order, then monthly-only items in theirs.
func Reconcile(weekly, monthly []domain.AggregatedUsage) []domain.ReconciledItem {
	monthlyByIdentity := make(map[string]domain.AggregatedUsage, len(monthly))
	for _, m := range monthly {
		monthlyByIdentity[m.Identity] = m
	}

	out := make([]domain.ReconciledItem, 0, len(weekly)+len(monthly))
	seen := make(map[string]struct{}, len(weekly))

	for _, w := range weekly {
		item := domain.ReconciledItem{
			Identity:        w.Identity,
			DisplayName:     w.DisplayName,
			ItemCode:        w.ItemCode,
			Unit:            w.Unit,
			WeeklyDailyRate: w.DailyRate,
		}
		if m, ok := monthlyByIdentity[w.Identity]; ok {
			item.MonthlyDailyRate = m.DailyRate
			if item.DisplayName == "" {
				item.DisplayName = m.DisplayName
			}
			if item.ItemCode == "" {
				item.ItemCode = m.ItemCode
			}
			if item.Unit == "" {
				item.Unit = m.Unit
			}
		}
		item.SuggestedPar = roundFloat(math.Max(item.WeeklyDailyRate, item.MonthlyDailyRate), 2)
		out = append(out, item)
		seen[w.Identity] = struct{}{}
	}

	for _, m := range monthly {
		if _, ok := seen[m.Identity]; ok {
			continue
		}
		out = append(out, domain.ReconciledItem{
			Identity:         m.Identity,
			DisplayName:      m.DisplayName,
			ItemCode:         m.ItemCode,
			Unit:             m.Unit,
			MonthlyDailyRate: m.DailyRate,
			SuggestedPar:     roundFloat(m.DailyRate, 2),
		})
	}

	return out
}
