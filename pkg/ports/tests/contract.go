package tests

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DiagramLoaderContractTest verifies that a loader returns a diagram equal to
// want: same actors, same use cases in the same order, same associations.
func DiagramLoaderContractTest(t *testing.T, loader ports.DiagramLoader, want *diagram.Diagram) {
	t.Helper()

	t.Run("LoadDiagram", func(t *testing.T) {
		got, err := loader.LoadDiagram(context.Background())
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, actorNames(want), actorNames(got))
		assert.Equal(t, useCaseTitles(want), useCaseTitles(got))
		assert.Equal(t, associationPairs(want), associationPairs(got))
		assert.NoError(t, got.CheckInvariants())
	})

	t.Run("LoadDiagram_Repeatable", func(t *testing.T) {
		first, err := loader.LoadDiagram(context.Background())
		require.NoError(t, err)
		second, err := loader.LoadDiagram(context.Background())
		require.NoError(t, err)
		assert.Equal(t, useCaseTitles(first), useCaseTitles(second))
	})
}

// EffectRunnerContractTest verifies that a runner accepts the given effect
// without panicking and reports each execution through observed.
// observed must block until the effect was seen or the test times out.
func EffectRunnerContractTest[E any](t *testing.T, runner ports.EffectRunner[E], effect E, observed func(t *testing.T) E) {
	t.Helper()

	t.Run("Run", func(t *testing.T) {
		runner.Run(context.Background(), effect)
		assert.Equal(t, effect, observed(t))
	})

	t.Run("Run_Concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				runner.Run(context.Background(), effect)
			}()
		}
		wg.Wait()
		for range 4 {
			assert.Equal(t, effect, observed(t))
		}
	})
}

func actorNames(d *diagram.Diagram) []string {
	var names []string
	for _, e := range d.Actors() {
		names = append(names, e.Actor.Name)
	}
	return names
}

func useCaseTitles(d *diagram.Diagram) []string {
	var titles []string
	for _, e := range d.UseCases() {
		titles = append(titles, e.UseCase.Title)
	}
	return titles
}

func associationPairs(d *diagram.Diagram) [][2]string {
	var pairs [][2]string
	for _, a := range d.Associations() {
		actor, _ := d.Actor(a.Actor)
		uc, _ := d.UseCase(a.UseCase)
		pairs = append(pairs, [2]string{actor.Name, uc.Title})
	}
	return pairs
}
