// Package mcp exposes portals as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/butterfly"
	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/internal/presentation/graph"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/session"
)

// DiagramURI is the resource holding the Mermaid drawing of the diagram.
const DiagramURI = "butterfly://diagram"

// ButtonResult is one visible button.
type ButtonResult struct {
	Index int    `json:"index" jsonschema_description:"Portal index, used by click_button"`
	Label string `json:"label" jsonschema_description:"Button label"`
}

// PortalResponse is the view rendered for an actor.
type PortalResponse struct {
	Actor   string         `json:"actor" jsonschema_description:"The viewing actor"`
	Buttons []ButtonResult `json:"buttons" jsonschema_description:"Buttons visible to the actor"`
	Clicked string         `json:"clicked,omitempty" jsonschema_description:"Label of the activated button, if any"`
}

// Server exposes a diagram's portal as an MCP Server.
// MCP calls are stateless: every call builds a fresh engine for the given actor.
type Server struct {
	factory   session.Factory[string]
	diagram   *diagram.Diagram
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(factory session.Factory[string], d *diagram.Diagram, opts ...Option) *Server {
	s := &Server{
		factory:   factory,
		diagram:   d,
		mcpServer: server.NewMCPServer("butterfly-mcp", strings.TrimSpace(butterfly.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx ends.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: render_portal
	renderTool := mcp.NewTool("render_portal",
		mcp.WithDescription("List the buttons the given actor can see."),
		mcp.WithString("actor", mcp.Required(), mcp.Description("Actor name, e.g. Administrator")),
		mcp.WithOutputSchema[PortalResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRenderPortal))

	// TOOL: click_button
	clickTool := mcp.NewTool("click_button",
		mcp.WithDescription("Activate a visible button as the given actor. Its effect runs asynchronously."),
		mcp.WithString("actor", mcp.Required(), mcp.Description("Actor name")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Portal index of the button, as returned by render_portal")),
		mcp.WithOutputSchema[PortalResponse](),
	)
	s.mcpServer.AddTool(clickTool, mcp.NewStructuredToolHandler(s.handleClickButton))

	// TOOL: list_actors
	s.mcpServer.AddTool(mcp.NewTool("list_actors",
		mcp.WithDescription("List the actors declared by the diagram."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strings.Join(s.actorNames(), "\n")), nil
	})
}

func (s *Server) actorNames() []string {
	var names []string
	for _, e := range s.diagram.Actors() {
		names = append(names, e.Actor.Name)
	}
	return names
}

func actorArg(args map[string]interface{}) (domain.Actor, error) {
	actor, _ := args["actor"].(string)
	if strings.TrimSpace(actor) == "" {
		return "", errors.New("actor is required")
	}
	return domain.NewActor(actor), nil
}

func newPortalResponse(view domain.View[string]) PortalResponse {
	resp := PortalResponse{Actor: view.Actor.String(), Buttons: make([]ButtonResult, len(view.Elements))}
	for i, el := range view.Elements {
		resp.Buttons[i] = ButtonResult{Index: el.Index, Label: el.Label}
	}
	return resp
}

func (s *Server) handleRenderPortal(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PortalResponse, error) {
	actor, err := actorArg(args)
	if err != nil {
		return PortalResponse{}, err
	}
	return newPortalResponse(s.factory(actor).Render(ctx)), nil
}

func (s *Server) handleClickButton(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PortalResponse, error) {
	actor, err := actorArg(args)
	if err != nil {
		return PortalResponse{}, err
	}
	raw, ok := args["index"].(float64)
	if !ok || raw != float64(int(raw)) {
		return PortalResponse{}, errors.New("index must be an integer")
	}
	index := int(raw)

	eng := s.factory(actor)
	view := eng.Render(ctx)
	element, found := view.Find(index)
	if err := eng.Click(ctx, index); err != nil {
		s.logger.Warn("MCP click rejected", "actor", actor, "index", index, "error", err)
		return PortalResponse{}, err
	}
	s.logger.Info("MCP click", "actor", actor, "label", element.Label)

	resp := newPortalResponse(eng.Render(ctx))
	if found {
		resp.Clicked = element.Label
	}
	return resp, nil
}

func (s *Server) registerResources() {
	// EXPOSE: butterfly://diagram
	s.mcpServer.AddResource(mcp.NewResource(DiagramURI, "Use-case diagram (Mermaid)",
		mcp.WithMIMEType("text/plain"),
	), s.readDiagram)
}

func (s *Server) readDiagram(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      DiagramURI,
			MIMEType: "text/plain",
			Text:     graph.GenerateMermaid(s.diagram, nil),
		},
	}, nil
}
