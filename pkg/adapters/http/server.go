// Package http exposes portal sessions over a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/butterfly"
	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/internal/presentation/graph"
	iruntime "github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/session"
)

// Button is the wire form of a rendered element.
type Button struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// View is the wire form of a rendered view.
type View struct {
	Actor   string   `json:"actor"`
	Buttons []Button `json:"buttons"`
}

// ActorRequest is the body of POST /sessions and PUT /sessions/{id}/actor.
type ActorRequest struct {
	Actor string `json:"actor"`
}

// SessionResponse is returned by POST /sessions.
type SessionResponse struct {
	ID   string `json:"id"`
	View View   `json:"view"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewView maps a domain view to its wire form.
func NewView[E any](v domain.View[E]) View {
	out := View{Actor: v.Actor.String(), Buttons: make([]Button, len(v.Elements))}
	for i, el := range v.Elements {
		out.Buttons[i] = Button{Index: el.Index, Label: el.Label}
	}
	return out
}

// Server serves portal sessions built from one diagram.
type Server struct {
	Sessions *session.Manager[string]
	Diagram  *diagram.Diagram

	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes gatherer on GET /metrics.
func WithMetrics(gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// NewServer creates a server whose sessions come from sessions and whose
// /diagram endpoint draws d.
func NewServer(sessions *session.Manager[string], d *diagram.Diagram, opts ...Option) *Server {
	s := &Server{
		Sessions: sessions,
		Diagram:  d,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates the HTTP handler. It fails only if the embedded
// OpenAPI document is invalid.
func (s *Server) NewHandler() (http.Handler, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	router, err := newRouter(doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(s.validateRequests(router))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/health", s.GetHealth)
	r.Get("/diagram", s.GetDiagram)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.CreateSession)
		r.Get("/{id}", s.GetSession)
		r.Delete("/{id}", s.DeleteSession)
		r.Put("/{id}/actor", s.SetActor)
		r.Post("/{id}/buttons/{index}/click", s.ClickButton)
	})

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := s.Sessions.Create(domain.NewActor(body.Actor))
	var view View
	err := s.Sessions.With(r.Context(), id, func(ctx context.Context, eng *iruntime.Engine[string]) error {
		view = NewView(eng.Render(ctx))
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	s.logger.Info("session created", "session_id", id, "actor", body.Actor)
	writeJSON(w, http.StatusCreated, SessionResponse{ID: id, View: view})
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var view View
	err := s.Sessions.With(r.Context(), id, func(ctx context.Context, eng *iruntime.Engine[string]) error {
		view = NewView(eng.Render(ctx))
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.Delete(chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetActor handles PUT /sessions/{id}/actor.
func (s *Server) SetActor(w http.ResponseWriter, r *http.Request) {
	var body ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	var view View
	err := s.Sessions.With(r.Context(), id, func(ctx context.Context, eng *iruntime.Engine[string]) error {
		eng.SetActor(ctx, domain.NewActor(body.Actor))
		view = NewView(eng.Render(ctx))
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ClickButton handles POST /sessions/{id}/buttons/{index}/click.
// The index is the button's position in the portal, as reported in views.
func (s *Server) ClickButton(w http.ResponseWriter, r *http.Request) {
	var index int
	err := runtime.BindStyledParameterWithOptions("simple", "index", chi.URLParam(r, "index"), &index, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	var view View
	err = s.Sessions.With(r.Context(), id, func(ctx context.Context, eng *iruntime.Engine[string]) error {
		if err := eng.Click(ctx, index); err != nil {
			return err
		}
		view = NewView(eng.Render(ctx))
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, view)
}

// GetDiagram handles GET /diagram. An actor query highlights its view.
func (s *Server) GetDiagram(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if actor := r.URL.Query().Get("actor"); actor != "" {
		overlay = &graph.GraphOverlay{Actor: domain.NewActor(actor)}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(s.Diagram, overlay)))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"version":  strings.TrimSpace(butterfly.Version),
		"sessions": strconv.Itoa(s.Sessions.Len()),
	})
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, domain.ErrElementNotVisible):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
