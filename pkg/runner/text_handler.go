package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	inputChan chan inputResult
	startOnce sync.Once

	done      chan struct{}
	closeOnce sync.Once
	stopped   chan struct{}
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump moves blocking reads off the caller so Input can honour ctx.
// It exits at EOF, on a read error, or when a line is ready after Close.
// A read that is still blocked keeps it alive until the reader returns.
func (h *TextHandler) pump() {
	defer close(h.stopped)
	defer close(h.inputChan)

	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" && !h.send(inputResult{text: text}) {
			return
		}

		if err != nil {
			if err != io.EOF {
				h.send(inputResult{err: err})
			}
			return
		}
	}
}

func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.inputChan <- res:
		return true
	case <-h.done:
		return false
	}
}

// Close stops the input pump. Lines read afterwards are dropped. It is safe
// to call more than once.
func (h *TextHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	return nil
}

// Markdown formats a frame as a Markdown list. It is the input of the
// ContentRenderer.
func Markdown(frame Frame) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", frame.Actor)
	if len(frame.Buttons) == 0 {
		b.WriteString("_No actions available._\n")
		return b.String()
	}
	for _, btn := range frame.Buttons {
		fmt.Fprintf(&b, "%d. %s\n", btn.Number, btn.Label)
	}
	return b.String()
}

func (h *TextHandler) Output(ctx context.Context, frame Frame) error {
	output := Markdown(frame)
	if h.Renderer != nil {
		rendered, err := h.Renderer(output)
		if err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(output))
	return err
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	// Ensure the pump is running
	h.initPump()

	for {
		// Only show prompt if context is not yet done
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			// Sanitize Input (Limit + Control Chars)
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}
