package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Listing cache keys. Handlers consult these before hitting the store and
// mutations invalidate them.
const (
	VenueDirectoryKey = "listing:venues"
	ShowsListingKey   = "listing:shows"
)

type Config struct {
	Addr       string
	Password   string
	ListingTTL time.Duration
}

type ValkeyClient struct {
	client     *redis.Client
	listingTTL time.Duration
}

func NewValkeyClient(cfg Config) (*ValkeyClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	return &ValkeyClient{
		client:     rdb,
		listingTTL: cfg.ListingTTL,
	}, nil
}

// GetListingRaw returns the cached listing view model as raw JSON bytes.
func (v *ValkeyClient) GetListingRaw(ctx context.Context, key string) ([]byte, error) {
	data, err := v.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("listing not found in cache")
		}
		return nil, fmt.Errorf("failed to get listing from cache: %w", err)
	}
	return data, nil
}

// SetListing stores the listing view model. Failures are logged and
// swallowed; the cache is an optimization, never a source of truth.
func (v *ValkeyClient) SetListing(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("Failed to marshal listing for cache", "key", key, "error", err)
		return
	}

	if err := v.client.Set(ctx, key, data, v.listingTTL).Err(); err != nil {
		slog.Error("Failed to store listing in cache", "key", key, "error", err)
	}
}

// Invalidate drops the given listing keys after a mutation.
func (v *ValkeyClient) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := v.client.Del(ctx, keys...).Err(); err != nil {
		slog.Error("Failed to invalidate cache keys", "keys", keys, "error", err)
	}
}

func (v *ValkeyClient) Close() error {
	return v.client.Close()
}
