// Package cache holds StatementCache implementations.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ledger:statement"

// RedisStatementCache stores generated statements as JSON. Every key written for a scope is
// tracked in a per-scope set so the whole scope can be dropped after a posting.
type RedisStatementCache struct {
	client *redis.Client
}

var _ portsrepo.StatementCache = (*RedisStatementCache)(nil)

func NewRedisStatementCache(client *redis.Client) *RedisStatementCache {
	return &RedisStatementCache{client: client}
}

// NewRedisClientFromURL parses a redis:// URL and verifies the connection.
func NewRedisClientFromURL(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func entryKey(scopeID, key string) string {
	return keyPrefix + ":" + scopeID + ":" + key
}

func indexKey(scopeID string) string {
	return keyPrefix + ":" + scopeID + ":keys"
}

func (c *RedisStatementCache) Get(ctx context.Context, scopeID, key string) (*domain.FinancialStatement, bool, error) {
	raw, err := c.client.Get(ctx, entryKey(scopeID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("statement cache get: %w", err)
	}

	var stmt domain.FinancialStatement
	if err := json.Unmarshal(raw, &stmt); err != nil {
		return nil, false, fmt.Errorf("statement cache decode: %w", err)
	}
	return &stmt, true, nil
}

func (c *RedisStatementCache) Set(ctx context.Context, scopeID, key string, stmt *domain.FinancialStatement, ttl time.Duration) error {
	raw, err := json.Marshal(stmt)
	if err != nil {
		return fmt.Errorf("statement cache encode: %w", err)
	}

	k := entryKey(scopeID, key)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, k, raw, ttl)
	pipe.SAdd(ctx, indexKey(scopeID), k)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("statement cache set: %w", err)
	}
	return nil
}

// InvalidateScope deletes every statement cached for the scope together with its key index.
func (c *RedisStatementCache) InvalidateScope(ctx context.Context, scopeID string) error {
	idx := indexKey(scopeID)
	keys, err := c.client.SMembers(ctx, idx).Result()
	if err != nil {
		return fmt.Errorf("statement cache index: %w", err)
	}
	keys = append(keys, idx)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("statement cache invalidate: %w", err)
	}
	return nil
}

// NoopStatementCache is used when no Redis URL is configured; every lookup misses.
type NoopStatementCache struct{}

var _ portsrepo.StatementCache = NoopStatementCache{}

func (NoopStatementCache) Get(context.Context, string, string) (*domain.FinancialStatement, bool, error) {
	return nil, false, nil
}

func (NoopStatementCache) Set(context.Context, string, string, *domain.FinancialStatement, time.Duration) error {
	return nil
}

func (NoopStatementCache) InvalidateScope(context.Context, string) error { return nil }
