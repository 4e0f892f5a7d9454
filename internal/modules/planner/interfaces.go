package planner

import (
	"context"

	"eventnomous/internal/domain"
)

// DraftRepository holds at most one draft per user.
type DraftRepository interface {
	Load(ctx context.Context, userID int64) (*domain.EventDraft, error)
	Save(ctx context.Context, userID int64, draft *domain.EventDraft) error
	Delete(ctx context.Context, userID int64) error
}

// CatalogReader is the read-only view of the vendor catalog the planner
// needs to price line items.
type CatalogReader interface {
	FindVendor(ctx context.Context, id string) (*domain.Vendor, error)
}

// Notifier pushes real-time updates to a user's open dashboard connections.
// Best effort: failures are not propagated into the mutation path.
type Notifier interface {
	Publish(userID int64, event string, payload any)
}
