package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/butterfly/pkg/adapters/redis"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Dispatcher) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	d := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = d.Close() })
	return mr, d
}

func TestDispatcher_Contract(t *testing.T) {
	_, d := setup(t)

	tests.EffectRunnerContractTest[string](t, d, "Post comment", func(t *testing.T) string {
		env, err := d.Next(context.Background(), time.Second)
		require.NoError(t, err)
		return env.Effect
	})
}

func TestDispatcher_EnvelopeCarriesActor(t *testing.T) {
	mr, d := setup(t, redis.WithKey("forum:effects"))
	assert.Equal(t, "forum:effects", d.Key())

	ctx := domain.ContextWithActor(context.Background(), "Administrator")
	d.Run(ctx, "Ban subscriber")

	assert.True(t, mr.Exists("forum:effects"))
	assert.False(t, mr.Exists(redis.DefaultKey))

	n, err := d.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	env, err := d.Next(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Ban subscriber", env.Effect)
	assert.Equal(t, "Administrator", env.Actor)
	assert.False(t, env.DispatchedAt.IsZero())
}

func TestDispatcher_PreservesOrder(t *testing.T) {
	_, d := setup(t)
	ctx := context.Background()

	for _, e := range []string{"a", "b", "c"} {
		require.NoError(t, d.Push(ctx, e))
	}
	for _, want := range []string{"a", "b", "c"} {
		env, err := d.Next(ctx, time.Second)
		require.NoError(t, err)
		assert.Equal(t, want, env.Effect)
	}
}

func TestDispatcher_NextOnEmptyList(t *testing.T) {
	_, d := setup(t)

	_, err := d.Next(context.Background(), 50*time.Millisecond)
	assert.ErrorIs(t, err, redis.ErrNoEffect)
}

func TestDispatcher_RunLogsUnreachableServer(t *testing.T) {
	mr, d := setup(t)
	mr.Close()

	assert.NotPanics(t, func() {
		d.Run(context.Background(), "Post comment")
	})
	assert.Error(t, d.Push(context.Background(), "Post comment"))
}
