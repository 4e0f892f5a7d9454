package planner

import "time"

// StartDraftRequest overlays the supplied fields on a fresh draft. All fields
// are optional; omitted ones fall back to the defaults (type "Wedding", no
// date, zero guests, zero budget). Guest count and budget are deliberately
// not range-checked here: out-of-range values flow into the budget figures
// unchanged.
type StartDraftRequest struct {
	Type       string     `json:"type"`
	Date       *time.Time `json:"date"`
	GuestCount int        `json:"guest_count"`
	Budget     float64    `json:"budget"`
}

type AddServiceRequest struct {
	VendorID  string `json:"vendor_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  *int   `json:"quantity"`
}

type UpdateDraftRequest struct {
	Type       *string    `json:"type"`
	Date       *time.Time `json:"date"`
	GuestCount *int       `json:"guest_count"`
	Budget     *float64   `json:"budget"`
}
