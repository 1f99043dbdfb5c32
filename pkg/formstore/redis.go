package formstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/validify/pkg/formstate"
)

// RedisConfig describes the Redis connection used by RedisStore.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL"`                             // ConnectionURL in the form "redis://:password@localhost:6379/0". Empty disables Redis.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`   // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`  // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // ConnectTimeout bounds the whole connection procedure.
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"form:"`   // KeyPrefix is prepended to every session id.
}

// ConnectRedis opens a client and pings it, retrying up to RetryAttempts
// times. The last ping error is joined to ErrRedisNotReady.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err(), lastErr)
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// RedisStore implements Store on top of Redis. Snapshots are stored as JSON.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a store using client. Keys are prefix+id; a ttl of
// zero keeps snapshots forever.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

// Save writes the snapshot and refreshes its expiry.
func (r *RedisStore) Save(ctx context.Context, id string, state formstate.FormState) error {
	if id == "" {
		return ErrEmptyID
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("formstore: encode snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key(id), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("formstore: save snapshot: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot stored under id.
func (r *RedisStore) Load(ctx context.Context, id string) (formstate.FormState, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return formstate.FormState{}, ErrNotFound
	}
	if err != nil {
		return formstate.FormState{}, fmt.Errorf("formstore: load snapshot: %w", err)
	}

	var state formstate.FormState
	if err := json.Unmarshal(data, &state); err != nil {
		return formstate.FormState{}, fmt.Errorf("formstore: decode snapshot: %w", err)
	}
	return state, nil
}

// Delete removes the snapshot stored under id.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("formstore: delete snapshot: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
