package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forumFactory(runner ports.EffectRunner[string]) Factory[string] {
	portal := diagram.BuildPortal(diagram.Forum(), diagram.TitleAction)
	return func(actor domain.Actor) *runtime.Engine[string] {
		return runtime.NewEngine(portal, actor, runner)
	}
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager(forumFactory(nil))
	ctx := context.Background()

	id := m.Create("Subscriber")
	require.NotEmpty(t, id)
	assert.Equal(t, []string{id}, m.List())

	err := m.With(ctx, id, func(ctx context.Context, eng *runtime.Engine[string]) error {
		assert.Equal(t, domain.Actor("Subscriber"), eng.State().CurrentActor)
		eng.SetActor(ctx, "Administrator")
		return nil
	})
	require.NoError(t, err)

	err = m.With(ctx, id, func(ctx context.Context, eng *runtime.Engine[string]) error {
		assert.Equal(t, 3, eng.Render(ctx).Len())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, m.Delete(id))
	assert.Empty(t, m.List())

	err = m.With(ctx, id, func(context.Context, *runtime.Engine[string]) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.Delete(id), ErrSessionNotFound)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(forumFactory(nil))
	ctx := context.Background()

	admin := m.Create("Administrator")
	sub := m.Create("Subscriber")
	assert.NotEqual(t, admin, sub)
	assert.Equal(t, 2, m.Len())

	require.NoError(t, m.With(ctx, sub, func(ctx context.Context, eng *runtime.Engine[string]) error {
		assert.Equal(t, []string{"Create subscriber", "Post comment"}, eng.Render(ctx).Labels())
		return nil
	}))
}

func TestManager_IDGeneratorCollision(t *testing.T) {
	var n int
	ids := []string{"a", "a", "b"}
	m := NewManager(forumFactory(nil), WithIDGenerator(func() string {
		id := ids[n]
		n++
		return id
	}))

	assert.Equal(t, "a", m.Create("Subscriber"))
	assert.Equal(t, "b", m.Create("Subscriber"))
}

func TestManager_ReturnsCallbackError(t *testing.T) {
	m := NewManager(forumFactory(nil))
	id := m.Create("Subscriber")

	err := m.With(context.Background(), id, func(ctx context.Context, eng *runtime.Engine[string]) error {
		return eng.Click(ctx, 0)
	})
	assert.ErrorIs(t, err, domain.ErrElementNotVisible)
}

func TestManager_SerializesPerSession(t *testing.T) {
	var clicks atomic.Int64
	runner := ports.EffectRunnerFunc[string](func(context.Context, string) {
		clicks.Add(1)
	})
	m := NewManager(forumFactory(runner))
	id := m.Create("Administrator")

	var inside atomic.Int32
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.With(context.Background(), id, func(ctx context.Context, eng *runtime.Engine[string]) error {
				if inside.Add(1) != 1 {
					return fmt.Errorf("concurrent access on iteration %d", i)
				}
				defer inside.Add(-1)
				return eng.Click(ctx, 2)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(20), clicks.Load())
}
