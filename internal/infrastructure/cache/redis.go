package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// SummaryCache stores serialized note records in Redis keyed by prompt
// digest. All failures are advisory: a broken cache degrades to recomputing
// summaries, never to failing an item.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSummaryCache connects to Redis and verifies the connection.
func NewSummaryCache(cfg *config.Config, logger *zap.Logger) (*SummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &SummaryCache{
		client: client,
		ttl:    time.Duration(cfg.Redis.TTLHours) * time.Hour,
		logger: logger,
	}, nil
}

// Get returns the cached note record for key, if present and decodable.
func (c *SummaryCache) Get(ctx context.Context, key string) (*entities.OpportunityNotes, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("summary cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var n entities.OpportunityNotes
	if err := json.Unmarshal(raw, &n); err != nil {
		if c.logger != nil {
			c.logger.Warn("summary cache entry corrupt", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return &n, true
}

// Set stores the note record under key with the configured TTL.
func (c *SummaryCache) Set(ctx context.Context, key string, n *entities.OpportunityNotes) {
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("summary cache write failed", zap.Error(err))
	}
}

// Close releases the Redis connection.
func (c *SummaryCache) Close() error {
	return c.client.Close()
}
