package cache

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore returns a Redis-backed store when Redis is enabled and
// reachable, and an in-memory store otherwise
func NewIdempotencyStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) shared.IdempotencyStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		logger.Info("Using in-memory idempotency store")
		return NewMemoryIdempotencyStore(0)
	}

	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory idempotency store. "+
			"Duplicate broker messages are possible across instances.",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewMemoryIdempotencyStore(0)
	}

	logger.Info("Using Redis idempotency store", zap.String("addr", cfg.Addr()))
	return NewRedisIdempotencyStore(client, "")
}
