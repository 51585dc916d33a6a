package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/eventbooking/config"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	eventsTTL time.Duration
	owner     string
}

func NewRedisCache(cfg config.RedisConfig, eventsTTL time.Duration, owner string) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		eventsTTL: eventsTTL,
		owner:     owner,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetEvents returns nil, nil on a miss.
func (c *RedisCache) GetEvents(ctx context.Context) ([]domain.Event, error) {
	data, err := c.client.Get(ctx, eventsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	events := []domain.Event{}
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *RedisCache) SetEvents(ctx context.Context, events []domain.Event) error {
	if events == nil {
		events = []domain.Event{}
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, eventsKey(), payload, c.eventsTTL).Err()
}

func (c *RedisCache) InvalidateEvents(ctx context.Context) error {
	return c.client.Del(ctx, eventsKey()).Err()
}

// AcquireSweepLock takes the named lock for ttl. It reports false when
// another worker holds it.
func (c *RedisCache) AcquireSweepLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, sweepLockKey(name), c.owner, ttl).Result()
}

// ReleaseSweepLock drops the lock only if this worker still owns it.
func (c *RedisCache) ReleaseSweepLock(ctx context.Context, name string) error {
	return releaseScript.Run(ctx, c.client, []string{sweepLockKey(name)}, c.owner).Err()
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

func eventsKey() string {
	return "cache:events:active"
}

func sweepLockKey(name string) string {
	return fmt.Sprintf("lock:sweep:%s", name)
}
