package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant_dashboard/internal/models"
)

const draftKeyPrefix = "draft:"

// DraftRepository keeps edit drafts in Redis; every save refreshes the TTL.
type DraftRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftRepository(rdb *redis.Client, ttl time.Duration) *DraftRepository {
	return &DraftRepository{rdb: rdb, ttl: ttl}
}

func (r *DraftRepository) SaveDraft(ctx context.Context, d *models.EditDraft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return r.rdb.Set(ctx, draftKeyPrefix+d.ID, payload, r.ttl).Err()
}

func (r *DraftRepository) LoadDraft(ctx context.Context, id string) (*models.EditDraft, error) {
	payload, err := r.rdb.Get(ctx, draftKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var d models.EditDraft
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &d, nil
}

func (r *DraftRepository) DeleteDraft(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, draftKeyPrefix+id).Err()
}
