package formstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validify/pkg/formstate"
	"github.com/dmitrymomot/validify/pkg/formstore"
	"github.com/dmitrymomot/validify/pkg/rules"
	"github.com/dmitrymomot/validify/pkg/schema"
)

func signupSchema() *schema.Schema {
	return schema.MustNew(
		schema.Field{Name: "name", Rules: rules.RuleSet{Type: rules.TypeString, Required: true}},
		schema.Field{Name: "interests", Rules: rules.RuleSet{Type: rules.TypeArray}},
	)
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	t.Parallel()
	_, err := formstore.ConnectRedis(context.Background(), formstore.RedisConfig{ConnectionURL: "://bad"})
	assert.ErrorIs(t, err, formstore.ErrFailedToParseRedisURL)
}

func TestConnectRedis_Unreachable(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := formstore.ConnectRedis(context.Background(), formstore.RedisConfig{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  1,
		RetryInterval:  time.Hour,
		ConnectTimeout: 30 * time.Second,
	})
	require.ErrorIs(t, err, formstore.ErrRedisNotReady)
	assert.NotErrorIs(t, err, context.DeadlineExceeded, "no wait after the last attempt")
	assert.Less(t, time.Since(start), 20*time.Second)
	assert.NotEqual(t, formstore.ErrRedisNotReady.Error(), err.Error(), "last ping error is kept")
}

// TestRedisStore runs against a live server when TEST_REDIS_URL is set.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL is not set")
	}

	ctx := context.Background()
	client, err := formstore.ConnectRedis(ctx, formstore.RedisConfig{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := formstore.NewRedisStore(client, "test:form:", time.Minute)
	require.NoError(t, store.Ping(ctx))

	id := uuid.NewString()
	t.Cleanup(func() { _ = store.Delete(ctx, id) })

	_, err = store.Load(ctx, id)
	require.ErrorIs(t, err, formstore.ErrNotFound)

	require.NoError(t, store.Save(ctx, id, snapshot()))
	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.OK)
	assert.Equal(t, "Ann", got.Data["name"].Value)
	// JSON turns string lists into []any; Restore and Toggle accept both.
	assert.Equal(t, []any{"go"}, got.Data["interests"].Value)

	f := formstate.MustNew(signupSchema())
	require.NoError(t, f.Restore(got))
	require.NoError(t, f.Toggle("interests", "rust", true))

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, formstore.ErrNotFound)

	assert.ErrorIs(t, store.Save(ctx, "", snapshot()), formstore.ErrEmptyID)
}
