package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/models"
)

// SummaryCacheRepository caches per-user diet summaries in Redis
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of a cached summary
}

// NewSummaryCacheRepository creates a new repository instance with the given TTL
func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID uuid.UUID) string {
	return fmt.Sprintf("diet_summary:%s", userID)
}

// Get returns the cached summary, or nil on a cache miss.
func (r *SummaryCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.DietSummary, error) {
	key := summaryKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		logger.Log.Infow("key", key, "result", "miss", "error", nil)
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("key", key, "result", nil, "error", err)
		return nil, err
	}

	var summary models.DietSummary
	if err := json.Unmarshal(val, &summary); err != nil {
		logger.Log.Infow("key", key, "value", string(val), "result", nil, "error", err)
		return nil, err
	}

	logger.Log.Infow("key", key, "result", summary, "error", nil)
	return &summary, nil
}

// Set caches the summary with the repository expiration
func (r *SummaryCacheRepository) Set(ctx context.Context, userID uuid.UUID, summary *models.DietSummary) error {
	key := summaryKey(userID)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("key", key, "value", string(data), "result", "ok", "error", err)
	return err
}

// Delete drops the cached summary so the next read recomputes it
func (r *SummaryCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := summaryKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("key", key, "result", "deleted", "error", err)
	return err
}
