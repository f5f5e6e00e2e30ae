package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the list effects are pushed onto.
const DefaultKey = "butterfly:effects"

// ErrNoEffect is returned by Next when nothing arrived before the timeout.
var ErrNoEffect = errors.New("no effect available")

// Envelope is the wire form of a dispatched effect.
type Envelope struct {
	Effect       string    `json:"effect"`
	Actor        string    `json:"actor,omitempty"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

// Dispatcher implements ports.EffectRunner[string] by queueing effects on a
// Redis list for an out-of-process consumer.
type Dispatcher struct {
	client *backend.Client
	key    string
	logger *slog.Logger
	now    func() time.Time
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithKey sets the list key. Empty keys are ignored.
func WithKey(key string) Option {
	return func(d *Dispatcher) {
		if key != "" {
			d.key = key
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// New creates a Dispatcher connected to addr.
func New(addr string, opts ...Option) *Dispatcher {
	client := backend.NewClient(&backend.Options{
		Addr: addr,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Dispatcher with an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		client: client,
		key:    DefaultKey,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Key returns the list key in use.
func (d *Dispatcher) Key() string {
	return d.key
}

// Run implements ports.EffectRunner. Push failures are logged.
func (d *Dispatcher) Run(ctx context.Context, effect string) {
	if err := d.Push(ctx, effect); err != nil {
		d.logger.Error("failed to dispatch effect", "effect", effect, "key", d.key, "error", err)
		return
	}
	d.logger.Debug("effect dispatched", "effect", effect, "key", d.key)
}

// Push appends an envelope for effect to the list.
func (d *Dispatcher) Push(ctx context.Context, effect string) error {
	env := Envelope{
		Effect:       effect,
		DispatchedAt: d.now().UTC(),
	}
	if actor, ok := domain.ActorFromContext(ctx); ok {
		env.Actor = actor.String()
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return d.client.RPush(ctx, d.key, data).Err()
}

// Next blocks up to timeout for one envelope. It returns ErrNoEffect when
// the list stayed empty.
func (d *Dispatcher) Next(ctx context.Context, timeout time.Duration) (Envelope, error) {
	res, err := d.client.BLPop(ctx, timeout, d.key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return Envelope{}, ErrNoEffect
		}
		return Envelope{}, err
	}

	// BLPOP replies with [key, value].
	if len(res) != 2 {
		return Envelope{}, fmt.Errorf("unexpected BLPOP reply: %v", res)
	}

	var env Envelope
	if err := json.Unmarshal([]byte(res[1]), &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}
	return env, nil
}

// Len reports how many effects are waiting.
func (d *Dispatcher) Len(ctx context.Context) (int64, error) {
	return d.client.LLen(ctx, d.key).Result()
}

// Close closes the underlying client.
func (d *Dispatcher) Close() error {
	return d.client.Close()
}
