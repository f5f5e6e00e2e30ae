package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/pkg/domain"
)

// ErrNotRegistered is returned when an effect has no allow-listed command.
var ErrNotRegistered = errors.New("process effect not registered")

// Runner executes local processes as portal effects.
// It follows a Strict Registry pattern for security (Allow-Listing): only
// effect names bound in the configuration can run.
type Runner struct {
	registry map[string]RegisteredProcess
	baseDir  string
	timeout  time.Duration
	logger   *slog.Logger
}

// RegisteredProcess defines an allowed command execution.
type RegisteredProcess struct {
	Command string
	Args    []string
	Env     map[string]string
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the allow-list from a loaded config.
func WithRegistry(effects map[string]ProcessConfig) RunnerOption {
	return func(r *Runner) {
		for name, effect := range effects {
			r.registry[name] = RegisteredProcess{
				Command: effect.Command,
				Args:    effect.Args,
				Env:     effect.Environment,
			}
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// WithTimeout bounds each process. Zero means no limit.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new Process Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]RegisteredProcess),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command to the allow-list.
func (r *Runner) Register(name string, command string, args ...string) {
	r.registry[name] = RegisteredProcess{
		Command: command,
		Args:    args,
	}
}

// Run implements ports.EffectRunner. Output and failures go to the log.
func (r *Runner) Run(ctx context.Context, name string) {
	out, err := r.Execute(ctx, name)
	if err != nil {
		r.logger.Error("process effect failed", "effect", name, "error", err)
		return
	}
	r.logger.Info("process effect completed", "effect", name, "output", out)
}

// Execute runs the command bound to name and returns its trimmed stdout.
//
// The effect name and the acting actor (if the context carries one) are
// passed as BUTTERFLY_EFFECT and BUTTERFLY_ACTOR environment variables,
// never as command-line flags.
func (r *Runner) Execute(ctx context.Context, name string) (string, error) {
	proc, ok := r.registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, proc.Command, proc.Args...)
	cmd.Dir = r.baseDir

	env := []string{"BUTTERFLY_EFFECT=" + name}
	if actor, ok := domain.ActorFromContext(ctx); ok {
		env = append(env, "BUTTERFLY_ACTOR="+actor.String())
	}
	for k, v := range proc.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = append(cmd.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("execution failed: %w. Stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
