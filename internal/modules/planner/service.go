package planner

import (
	"context"
	"errors"

	"eventnomous/internal/domain"
	"eventnomous/internal/modules/catalog"
	"eventnomous/internal/pkg/clock"
	"eventnomous/internal/repository"

	"github.com/google/uuid"
)

const defaultEventType = "Wedding"

const (
	EventBudgetUpdated = "budget_updated"
	EventDraftDeleted  = "draft_deleted"
)

// Service owns the draft-event lifecycle and the derived budget figures.
// Drafts are session-scoped: every operation is keyed by the authenticated
// user, so concurrent sessions never collide.
type Service struct {
	drafts DraftRepository
	cat    CatalogReader
	notifs Notifier
	clock  clock.Clock
}

func NewService(drafts DraftRepository, cat CatalogReader, notifs Notifier, clk clock.Clock) *Service {
	return &Service{
		drafts: drafts,
		cat:    cat,
		notifs: notifs,
		clock:  clk,
	}
}

// StartDraft creates a fresh draft for the user. Any existing draft is
// discarded outright; replaced tells the caller that happened so the UI can
// warn deliberately instead of guessing.
func (s *Service) StartDraft(ctx context.Context, userID int64, req StartDraftRequest) (*domain.EventDraft, bool, error) {
	replaced := false
	if _, err := s.drafts.Load(ctx, userID); err == nil {
		replaced = true
	} else if !errors.Is(err, repository.ErrDraftNotFound) {
		return nil, false, err
	}

	now := s.clock.Now()
	draft := &domain.EventDraft{
		ID:               uuid.NewString(),
		Type:             defaultEventType,
		Date:             req.Date,
		GuestCount:       req.GuestCount,
		Budget:           req.Budget,
		SelectedServices: []domain.LineItem{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.Type != "" {
		draft.Type = req.Type
	}

	if err := s.drafts.Save(ctx, userID, draft); err != nil {
		return nil, false, err
	}

	s.publishBudget(ctx, userID, draft)
	return draft, replaced, nil
}

// AddService appends one line item to the active draft. Repeated calls for
// the same vendor/service pair append separate items, never merge
// quantities. The pair is not checked against the catalog here: a dangling
// reference prices at 0 and surfaces as a budget warning.
func (s *Service) AddService(ctx context.Context, userID int64, req AddServiceRequest) (*domain.EventDraft, error) {
	draft, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	draft.SelectedServices = append(draft.SelectedServices, domain.LineItem{
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
		Quantity:  quantity,
	})
	draft.UpdatedAt = s.clock.Now()

	if err := s.drafts.Save(ctx, userID, draft); err != nil {
		return nil, err
	}

	s.publishBudget(ctx, userID, draft)
	return draft, nil
}

// UpdateDraft overlays the supplied fields on the active draft without
// touching the selected services.
func (s *Service) UpdateDraft(ctx context.Context, userID int64, req UpdateDraftRequest) (*domain.EventDraft, error) {
	draft, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		draft.Type = *req.Type
	}
	if req.Date != nil {
		draft.Date = req.Date
	}
	if req.GuestCount != nil {
		draft.GuestCount = *req.GuestCount
	}
	if req.Budget != nil {
		draft.Budget = *req.Budget
	}
	draft.UpdatedAt = s.clock.Now()

	if err := s.drafts.Save(ctx, userID, draft); err != nil {
		return nil, err
	}

	s.publishBudget(ctx, userID, draft)
	return draft, nil
}

// DeleteDraft removes the user's draft. Idempotent: deleting with no draft
// is a no-op.
func (s *Service) DeleteDraft(ctx context.Context, userID int64) error {
	if err := s.drafts.Delete(ctx, userID); err != nil {
		return err
	}
	if s.notifs != nil {
		s.notifs.Publish(userID, EventDraftDeleted, nil)
	}
	return nil
}

func (s *Service) GetDraft(ctx context.Context, userID int64) (*domain.EventDraft, error) {
	return s.loadActive(ctx, userID)
}

// BudgetSummary recomputes the derived figures for the active draft.
func (s *Service) BudgetSummary(ctx context.Context, userID int64) (*domain.BudgetSummary, error) {
	draft, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, draft)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *Service) loadActive(ctx context.Context, userID int64) (*domain.EventDraft, error) {
	draft, err := s.drafts.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, ErrNoActiveDraft
		}
		return nil, err
	}
	return draft, nil
}

// summarize fetches each referenced vendor once and folds the draft over the
// snapshot. A vendor the catalog no longer knows is simply absent from the
// snapshot; Summarize turns that into a warning.
func (s *Service) summarize(ctx context.Context, draft *domain.EventDraft) (*domain.BudgetSummary, error) {
	vendors := make(map[string]*domain.Vendor)
	for _, item := range draft.SelectedServices {
		if _, seen := vendors[item.VendorID]; seen {
			continue
		}
		vendor, err := s.cat.FindVendor(ctx, item.VendorID)
		if err != nil {
			if errors.Is(err, catalog.ErrVendorNotFound) {
				vendors[item.VendorID] = nil
				continue
			}
			return nil, err
		}
		vendors[item.VendorID] = vendor
	}

	summary := Summarize(draft, vendors)
	return &summary, nil
}

func (s *Service) publishBudget(ctx context.Context, userID int64, draft *domain.EventDraft) {
	if s.notifs == nil {
		return
	}
	summary, err := s.summarize(ctx, draft)
	if err != nil {
		return
	}
	s.notifs.Publish(userID, EventBudgetUpdated, summary)
}
