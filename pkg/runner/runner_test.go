package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	effects []string
}

func (r *recorder) Run(_ context.Context, effect string) {
	r.effects = append(r.effects, effect)
}

func forumEngine(actor domain.Actor, runner ports.EffectRunner[string]) *runtime.Engine[string] {
	portal := diagram.BuildPortal(diagram.Forum(), diagram.TitleAction)
	return runtime.NewEngine(portal, actor, runner)
}

func TestRun_TextScenario(t *testing.T) {
	rec := &recorder{}
	eng := forumEngine("Subscriber", rec)

	in := strings.NewReader("1\nas Administrator\n1\n9\nhello\nquit\n")
	var out bytes.Buffer
	r := NewRunner(WithInputHandler(NewTextHandler(in, &out)))

	require.NoError(t, Run[string](context.Background(), r, eng))

	// Subscriber's first button is Create subscriber, Administrator's is Ban subscriber.
	assert.Equal(t, []string{"Create subscriber", "Ban subscriber"}, rec.effects)

	output := out.String()
	assert.Contains(t, output, "## Subscriber")
	assert.Contains(t, output, "## Administrator")
	assert.Contains(t, output, "3. Post comment")
	assert.Contains(t, output, "no button 9 (choose 1-3)")
	assert.Contains(t, output, "unknown command")
}

func TestRun_EOFStops(t *testing.T) {
	eng := forumEngine("Subscriber", nil)
	var out bytes.Buffer
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("list"), &out)))

	require.NoError(t, Run[string](context.Background(), r, eng))
	assert.Equal(t, 2, strings.Count(out.String(), "## Subscriber"))
}

func TestRun_UnknownActorShowsEmptyView(t *testing.T) {
	rec := &recorder{}
	eng := forumEngine("Guest", rec)
	var out bytes.Buffer
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("1\n"), &out)))

	require.NoError(t, Run[string](context.Background(), r, eng))
	assert.Empty(t, rec.effects)
	assert.Contains(t, out.String(), "No actions available")
	assert.Contains(t, out.String(), "nothing is available to Guest")
}

func TestRun_Renderer(t *testing.T) {
	eng := forumEngine("Subscriber", nil)
	var out bytes.Buffer
	h := NewTextHandler(strings.NewReader(""), &out, WithTextHandlerRenderer(func(s string) (string, error) {
		return strings.ToUpper(s), nil
	}))

	require.NoError(t, Run[string](context.Background(), NewRunner(WithInputHandler(h)), eng))
	assert.Contains(t, out.String(), "POST COMMENT")
}

func TestRun_CancelledContext(t *testing.T) {
	eng := forumEngine("Subscriber", nil)
	pr, _ := io.Pipe()
	var out bytes.Buffer
	r := NewRunner(WithInputHandler(NewTextHandler(pr, &out)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Run[string](ctx, r, eng), context.Canceled)
}

func TestRun_JSONFrames(t *testing.T) {
	rec := &recorder{}
	eng := forumEngine("Administrator", rec)

	in := strings.NewReader("\"as Subscriber\"\n2\n")
	var out bytes.Buffer
	r := NewRunner(WithInputHandler(NewJSONHandler(in, &out)))

	require.NoError(t, Run[string](context.Background(), r, eng))
	assert.Equal(t, []string{"Post comment"}, rec.effects)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	var first Frame
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Administrator", first.Actor)
	assert.Len(t, first.Buttons, 3)

	var second Frame
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, Frame{Actor: "Subscriber", Buttons: []FrameButton{
		{Number: 1, Index: 1, Label: "Create subscriber"},
		{Number: 2, Index: 2, Label: "Post comment"},
	}}, second)

	var msg SystemMessage
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &msg))
	assert.Equal(t, "Post comment: done", msg.System)
}


func TestTextHandler_CloseStopsPump(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	h := NewTextHandler(pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Input(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	// a line arriving after the host gave up must not wedge the pump
	_, err = pw.Write([]byte("1\n"))
	require.NoError(t, err)

	select {
	case <-h.stopped:
	case <-time.After(time.Second):
		t.Fatal("input pump still blocked after Close")
	}
}
