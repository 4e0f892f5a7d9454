package domain

import "time"

// EventDraft is an event plan in progress. Each user holds at most one;
// starting a new draft replaces the old one outright.
type EventDraft struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Date             *time.Time `json:"date"`
	GuestCount       int        `json:"guest_count"`
	Budget           float64    `json:"budget"`
	SelectedServices []LineItem `json:"selected_services"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// LineItem attaches one vendor service to a draft. It holds only the IDs:
// the price is resolved against the catalog at read time, so catalog price
// changes show up in existing drafts.
type LineItem struct {
	VendorID  string `json:"vendor_id"`
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

// BudgetSummary carries the figures derived from a draft joined against the
// catalog. It is recomputed on every read and never stored.
type BudgetSummary struct {
	TotalSpent       float64         `json:"total_spent"`
	Budget           float64         `json:"budget"`
	Remaining        float64         `json:"remaining"`
	PercentageSpent  float64         `json:"percentage_spent"`
	IsOverBudget     bool            `json:"is_over_budget"`
	Warnings         []BudgetWarning `json:"warnings,omitempty"`
}

// BudgetWarning flags a line item whose vendor or service no longer exists in
// the catalog. The item still contributes 0 to TotalSpent.
type BudgetWarning struct {
	VendorID  string `json:"vendor_id"`
	ServiceID string `json:"service_id"`
	Reason    string `json:"reason"`
}

const (
	WarnVendorMissing  = "vendor_not_found"
	WarnServiceMissing = "service_not_found"
)
