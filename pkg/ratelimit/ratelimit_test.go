package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/pkg/ratelimit"
	"github.com/Nik0lakt/cafeteria-project/pkg/testdb"
)

func TestLimiter_NilClientAllows(t *testing.T) {
	t.Parallel()

	l := ratelimit.New(nil, "frames:", 1, time.Second)

	for range 5 {
		ok, err := l.Allow(context.Background(), "s")
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestLimiter_Allow(t *testing.T) {
	client, err := ratelimit.Connect(context.Background(), testdb.RedisURL(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	l := ratelimit.New(client, "test:"+uuid.Must(uuid.NewV4()).String()+":", 3, time.Minute)

	for range 3 {
		ok, err := l.Allow(context.Background(), "a")
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := l.Allow(context.Background(), "a")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = l.Allow(context.Background(), "b")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLimiter_WindowExpires(t *testing.T) {
	client, err := ratelimit.Connect(context.Background(), testdb.RedisURL(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	l := ratelimit.New(client, "test:"+uuid.Must(uuid.NewV4()).String()+":", 1, time.Second)

	ok, err := l.Allow(context.Background(), "a")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Allow(context.Background(), "a")
	require.NoError(t, err)
	require.False(t, ok)

	require.Eventually(t, func() bool {
		ok, err := l.Allow(context.Background(), "a")
		return err == nil && ok
	}, 4*time.Second, 100*time.Millisecond)
}

func TestConnect_BadURL(t *testing.T) {
	t.Parallel()

	_, err := ratelimit.Connect(context.Background(), "ftp://nowhere")
	require.Error(t, err)
}
