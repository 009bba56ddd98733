package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Guard grants at most one holder per key at a time.
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// MemoryGuard serializes holders of the same key within one process.
type MemoryGuard struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{locks: make(map[string]chan struct{})}
}

func (g *MemoryGuard) Acquire(ctx context.Context, key string) (func(), error) {
	for {
		g.mu.Lock()
		held, busy := g.locks[key]
		if !busy {
			done := make(chan struct{})
			g.locks[key] = done
			g.mu.Unlock()

			var once sync.Once
			return func() {
				once.Do(func() {
					g.mu.Lock()
					delete(g.locks, key)
					g.mu.Unlock()
					close(done)
				})
			}, nil
		}
		g.mu.Unlock()

		select {
		case <-held:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Held reports how many keys are currently locked.
func (g *MemoryGuard) Held() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.locks)
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard holds a short-lived lock record in redis so that several
// server instances share one lock per key.
type RedisGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	poll   time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisGuard{
		client: client,
		prefix: "guard:conversation:",
		ttl:    ttl,
		poll:   25 * time.Millisecond,
	}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := g.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(g.poll)
	defer ticker.Stop()

	for {
		ok, err := g.client.SetNX(ctx, lockKey, token, g.ttl).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("acquire guard %s: %w", key, err)
		}
		if ok {
			var once sync.Once
			return func() {
				once.Do(func() {
					releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
					defer cancel()
					_ = releaseScript.Run(releaseCtx, g.client, []string{lockKey}, token).Err()
				})
			}, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
