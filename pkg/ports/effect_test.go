package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/butterfly/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestEffectRunnerFunc(t *testing.T) {
	var got []string
	runner := ports.EffectRunnerFunc[string](func(_ context.Context, e string) {
		got = append(got, e)
	})

	runner.Run(context.Background(), "post")
	runner.Run(context.Background(), "ban")

	assert.Equal(t, []string{"post", "ban"}, got)
}

func TestInvoke(t *testing.T) {
	calls := 0
	runner := ports.Invoke()

	runner.Run(context.Background(), func() { calls++ })
	runner.Run(context.Background(), nil)

	assert.Equal(t, 1, calls)
}
