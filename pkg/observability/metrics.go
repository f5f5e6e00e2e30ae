package observability

import (
	"context"

	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Undeclared is the label value recorded for actors and button labels that
// were not known when the metrics were created. Actors come from clients on
// the HTTP and MCP hosts, so they are never used as label values unchecked.
const Undeclared = "undeclared"

// Metrics holds the Prometheus collectors fed by engine hooks.
type Metrics struct {
	Renders        *prometheus.CounterVec
	ActorChanges   prometheus.Counter
	Clicks         *prometheus.CounterVec
	VisibleButtons *prometheus.GaugeVec

	actors map[string]bool
	labels map[string]bool
}

// NewMetrics creates unregistered collectors. Only actors and labels given
// here get their own series; everything else is folded into Undeclared.
func NewMetrics(actors []domain.Actor, labels []string) *Metrics {
	m := newCollectors()
	m.actors = make(map[string]bool, len(actors))
	for _, a := range actors {
		m.actors[a.String()] = true
	}
	m.labels = make(map[string]bool, len(labels))
	for _, l := range labels {
		m.labels[l] = true
	}
	return m
}

// Labels returns the button labels of p, in portal order.
func Labels[E any](p domain.Portal[E]) []string {
	labels := make([]string, 0, p.Len())
	for _, b := range p.Buttons() {
		labels = append(labels, b.Label())
	}
	return labels
}

func newCollectors() *Metrics {
	return &Metrics{
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "butterfly_renders_total",
				Help: "Total number of portal renders",
			},
			[]string{"actor"},
		),
		ActorChanges: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "butterfly_actor_changes_total",
				Help: "Total number of actor changes",
			},
		),
		Clicks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "butterfly_clicks_total",
				Help: "Total number of button activations",
			},
			[]string{"label"},
		),
		VisibleButtons: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "butterfly_visible_buttons",
				Help: "Buttons visible in the latest render per actor",
			},
			[]string{"actor"},
		),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Renders, m.ActorChanges, m.Clicks, m.VisibleButtons} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks adapts the collectors to engine lifecycle hooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRender: func(_ context.Context, e *domain.RenderEvent) {
			actor := m.actorLabel(e.Actor)
			m.Renders.WithLabelValues(actor).Inc()
			m.VisibleButtons.WithLabelValues(actor).Set(float64(e.Visible))
		},
		OnActorChanged: func(_ context.Context, _ *domain.ActorEvent) {
			m.ActorChanges.Inc()
		},
		OnButtonClicked: func(_ context.Context, e *domain.ClickEvent) {
			m.Clicks.WithLabelValues(m.buttonLabel(e.Label)).Inc()
		},
	}
}

func (m *Metrics) actorLabel(a domain.Actor) string {
	if m.actors[a.String()] {
		return a.String()
	}
	return Undeclared
}

func (m *Metrics) buttonLabel(label string) string {
	if m.labels[label] {
		return label
	}
	return Undeclared
}
