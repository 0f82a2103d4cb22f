package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/miroslawsteblik/selene/internal/core/domain"
	"github.com/miroslawsteblik/selene/internal/core/port"
)

var _ port.QuoteCache = (*QuoteCache)(nil)

const quoteTTL = 15 * time.Minute

// QuoteCache keeps the most recently saved quote per symbol in Redis.
type QuoteCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewQuoteCache(client *redis.Client, logger *slog.Logger) *QuoteCache {
	return &QuoteCache{
		client: client,
		logger: logger,
	}
}

// Ping reports cache connectivity.
func (c *QuoteCache) Ping(ctx context.Context) string {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Sprintf("down: %v", err)
	}
	return "up"
}

func (c *QuoteCache) key(symbol string) string {
	return "quote:" + strings.ToUpper(symbol)
}

// SetLatest stores the quote under its symbol key with a TTL, replacing any
// previous entry.
func (c *QuoteCache) SetLatest(ctx context.Context, data *domain.MarketData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding quote: %w", err)
	}

	if err := c.client.Set(ctx, c.key(data.Symbol), payload, quoteTTL).Err(); err != nil {
		c.logger.Error("failed to cache quote",
			slog.String("symbol", data.Symbol), slog.Any("error", err))
		return err
	}
	return nil
}

// GetLatest returns the cached quote for symbol, or nil on a miss.
func (c *QuoteCache) GetLatest(ctx context.Context, symbol string) (*domain.MarketData, error) {
	payload, err := c.client.Get(ctx, c.key(symbol)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var data domain.MarketData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decoding cached quote: %w", err)
	}
	return &data, nil
}
