package process

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-based test")
	}
}

func TestRunner_Execute(t *testing.T) {
	skipOnWindows(t)

	runner := NewRunner()
	runner.Register("Post comment", "echo", "posted")

	t.Run("Executes Registered Command", func(t *testing.T) {
		out, err := runner.Execute(context.Background(), "Post comment")
		require.NoError(t, err)
		assert.Equal(t, "posted", out)
	})

	t.Run("Fails For Unregistered Effect", func(t *testing.T) {
		_, err := runner.Execute(context.Background(), "Ban subscriber")
		assert.ErrorIs(t, err, ErrNotRegistered)
	})
}

func TestRunner_PassesEffectAndActorViaEnv(t *testing.T) {
	skipOnWindows(t)

	runner := NewRunner(WithRegistry(map[string]ProcessConfig{
		"Ban subscriber": {
			Name:        "Ban subscriber",
			Command:     "sh",
			Args:        []string{"-c", `echo "$BUTTERFLY_ACTOR:$BUTTERFLY_EFFECT:$REASON"`},
			Environment: map[string]string{"REASON": "spam"},
		},
	}))

	ctx := domain.ContextWithActor(context.Background(), "Administrator")
	out, err := runner.Execute(ctx, "Ban subscriber")
	require.NoError(t, err)
	assert.Equal(t, "Administrator:Ban subscriber:spam", out)
}

func TestRunner_Timeout(t *testing.T) {
	skipOnWindows(t)

	runner := NewRunner(WithTimeout(50 * time.Millisecond))
	runner.Register("slow", "sleep", "5")

	start := time.Now()
	_, err := runner.Execute(context.Background(), "slow")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestRunner_RunLogsOutcome(t *testing.T) {
	skipOnWindows(t)

	var buf bytes.Buffer
	runner := NewRunner(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	runner.Register("ok", "echo", "done")
	runner.Register("fail", "sh", "-c", "echo broken >&2; exit 3")

	runner.Run(context.Background(), "ok")
	runner.Run(context.Background(), "fail")

	assert.Contains(t, buf.String(), "output=done")
	assert.Contains(t, buf.String(), "broken")
}

func TestLoadEffects(t *testing.T) {
	dir := t.TempDir()

	missing, err := LoadEffects(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, missing)

	yamlPath := filepath.Join(dir, "effects.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
effects:
  - name: Post comment
    command: echo
    args: [posted]
  - command: ignored-without-name
`), 0o644))

	effects, err := LoadEffects(yamlPath)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	assert.Equal(t, []string{"posted"}, effects["Post comment"].Args)

	jsonPath := filepath.Join(dir, "effects.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"effects":[{"name":"ban","command":"true"}]}`), 0o644))
	effects, err = LoadEffects(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "true", effects["ban"].Command)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("effects: [::"), 0o644))
	_, err = LoadEffects(badPath)
	assert.Error(t, err)
}
