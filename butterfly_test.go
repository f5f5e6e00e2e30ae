package butterfly_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/butterfly"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ForumDiagram(t *testing.T) {
	var ran []string
	runner := ports.EffectRunnerFunc[string](func(_ context.Context, e string) {
		ran = append(ran, e)
	})
	portal := diagram.BuildPortal(diagram.Forum(), diagram.TitleAction)

	eng := butterfly.New(portal, "Subscriber", runner)
	ctx := context.Background()

	assert.Equal(t, []string{"Create subscriber", "Post comment"}, eng.Render(ctx).Labels())

	require.NoError(t, eng.Click(ctx, 2))
	assert.Equal(t, []string{"Post comment"}, ran)
	assert.Equal(t, domain.Actor("Subscriber"), eng.Actor())

	eng.SetActor(ctx, "Administrator")
	assert.Equal(t, []string{"Ban subscriber", "Create subscriber", "Post comment"}, eng.Render(ctx).Labels())
}

func TestNew_WithNameTagsLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng := butterfly.New(domain.NewPortal[string](), "Guest", ports.EffectRunnerFunc[string](func(context.Context, string) {}),
		butterfly.WithLogger(logger),
		butterfly.WithName("forum"),
	)
	eng.SetActor(context.Background(), "Subscriber")

	assert.Equal(t, "forum", eng.Name)
	assert.True(t, strings.Contains(buf.String(), "portal=forum"))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(butterfly.Version))
}
