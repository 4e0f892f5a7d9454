package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"eventnomous/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ErrDraftNotFound means the user has no active draft. It is a normal state,
// not a failure: callers decide whether to surface it.
var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository stores at most one EventDraft per user. Drafts never expire
// on their own; only an explicit delete removes them.
type DraftRepository interface {
	Load(ctx context.Context, userID int64) (*domain.EventDraft, error)
	Save(ctx context.Context, userID int64, draft *domain.EventDraft) error
	Delete(ctx context.Context, userID int64) error
}

/* ---------- IN-MEMORY ---------- */

// MemoryDraftRepository keeps drafts in a process-local map. The default for
// single-node deployments and tests.
type MemoryDraftRepository struct {
	mu     sync.RWMutex
	drafts map[int64]*domain.EventDraft
}

func NewMemoryDraftRepository() *MemoryDraftRepository {
	return &MemoryDraftRepository{drafts: make(map[int64]*domain.EventDraft)}
}

func (r *MemoryDraftRepository) Load(ctx context.Context, userID int64) (*domain.EventDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.drafts[userID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	cp := *draft
	cp.SelectedServices = append([]domain.LineItem(nil), draft.SelectedServices...)
	return &cp, nil
}

func (r *MemoryDraftRepository) Save(ctx context.Context, userID int64, draft *domain.EventDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *draft
	cp.SelectedServices = append([]domain.LineItem(nil), draft.SelectedServices...)
	r.drafts[userID] = &cp
	return nil
}

func (r *MemoryDraftRepository) Delete(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, userID)
	return nil
}

/* ---------- REDIS ---------- */

// RedisDraftRepository keeps drafts in redis so they survive restarts and are
// shared across API nodes. Keys carry no TTL.
type RedisDraftRepository struct {
	client *redis.Client
}

func NewRedisDraftRepository(client *redis.Client) *RedisDraftRepository {
	return &RedisDraftRepository{client: client}
}

func draftKey(userID int64) string {
	return fmt.Sprintf("eventnomous:draft:%d", userID)
}

func (r *RedisDraftRepository) Load(ctx context.Context, userID int64) (*domain.EventDraft, error) {
	data, err := r.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	var draft domain.EventDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *RedisDraftRepository) Save(ctx context.Context, userID int64, draft *domain.EventDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKey(userID), data, 0).Err()
}

func (r *RedisDraftRepository) Delete(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, draftKey(userID)).Err()
}
