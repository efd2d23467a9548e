package broadcast_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/walletdesk/pkg/broadcast"
)

type payload struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newRedisClient(t *testing.T) *goredis.Client {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedis_FanOutAcrossInstances(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()
	channel := "walletdesk-test-" + uuid.NewString()

	a, err := broadcast.NewRedis[payload](ctx, client, channel, 4, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	b, err := broadcast.NewRedis[payload](ctx, client, channel, 4, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	subA := a.Subscribe(ctx)
	subB := b.Subscribe(ctx)

	a.Publish(ctx, payload{ID: "t1", Count: 2})

	got, ok := receive(t, subA.C())
	require.True(t, ok)
	assert.Equal(t, payload{ID: "t1", Count: 2}, got)

	got, ok = receive(t, subB.C())
	require.True(t, ok)
	assert.Equal(t, payload{ID: "t1", Count: 2}, got)
}

func TestRedis_SkipsUndecodable(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()
	channel := "walletdesk-test-" + uuid.NewString()

	b, err := broadcast.NewRedis[payload](ctx, client, channel, 4, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	sub := b.Subscribe(ctx)
	require.NoError(t, client.Publish(ctx, channel, "not json").Err())
	b.Publish(ctx, payload{ID: "ok"})

	got, ok := receive(t, sub.C())
	require.True(t, ok)
	assert.Equal(t, "ok", got.ID)
}

func TestRedis_Close(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()

	b, err := broadcast.NewRedis[payload](ctx, client, "walletdesk-test-"+uuid.NewString(), 1, nil)
	require.NoError(t, err)

	sub := b.Subscribe(ctx)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	select {
	case _, ok := <-sub.C():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscriber not closed")
	}
}
