package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Claimer grants one holder per key for a while, so an event is announced once
// even when several instances scan the same table.
type Claimer interface {
	// Claim reports whether the caller now holds key.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release gives key up before its TTL.
	Release(ctx context.Context, key string) error
}

// RedisClaimer claims keys with SET NX.
type RedisClaimer struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisClaimer returns a Claimer backed by rdb.
func NewRedisClaimer(rdb *redis.Client) *RedisClaimer {
	return &RedisClaimer{rdb: rdb, prefix: "campusdocs:notify:"}
}

func (c *RedisClaimer) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, c.prefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

func (c *RedisClaimer) Release(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, c.prefix+key).Err()
}

// MemoryClaimer is a process-local Claimer.
type MemoryClaimer struct {
	mu     sync.Mutex
	claims map[string]time.Time
	now    func() time.Time
}

// NewMemoryClaimer returns an empty MemoryClaimer.
func NewMemoryClaimer() *MemoryClaimer {
	return &MemoryClaimer{claims: make(map[string]time.Time), now: time.Now}
}

func (c *MemoryClaimer) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if until, ok := c.claims[key]; ok && now.Before(until) {
		return false, nil
	}
	c.claims[key] = now.Add(ttl)
	// expired entries are dropped lazily
	for k, until := range c.claims {
		if !now.Before(until) {
			delete(c.claims, k)
		}
	}
	return true, nil
}

func (c *MemoryClaimer) Release(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.claims, key)
	return nil
}
