package planner

import "eventnomous/internal/domain"

// Summarize derives the budget figures from a draft joined against a catalog
// snapshot. Pure: no stored state, recomputed on every read.
//
// A line item whose vendor or service is missing from the snapshot
// contributes exactly 0 to the total and is reported in Warnings so callers
// can surface the dangling reference instead of silently swallowing it.
func Summarize(draft *domain.EventDraft, vendors map[string]*domain.Vendor) domain.BudgetSummary {
	summary := domain.BudgetSummary{Budget: draft.Budget}

	for _, item := range draft.SelectedServices {
		vendor, ok := vendors[item.VendorID]
		if !ok || vendor == nil {
			summary.Warnings = append(summary.Warnings, domain.BudgetWarning{
				VendorID:  item.VendorID,
				ServiceID: item.ServiceID,
				Reason:    domain.WarnVendorMissing,
			})
			continue
		}

		svc := vendor.FindService(item.ServiceID)
		if svc == nil {
			summary.Warnings = append(summary.Warnings, domain.BudgetWarning{
				VendorID:  item.VendorID,
				ServiceID: item.ServiceID,
				Reason:    domain.WarnServiceMissing,
			})
			continue
		}

		summary.TotalSpent += svc.Price * float64(item.Quantity)
	}

	summary.Remaining = draft.Budget - summary.TotalSpent
	if draft.Budget > 0 {
		summary.PercentageSpent = summary.TotalSpent / draft.Budget * 100
	}
	summary.IsOverBudget = summary.TotalSpent > draft.Budget

	return summary
}
