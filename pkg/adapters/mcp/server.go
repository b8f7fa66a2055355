// Package mcp exposes persisted lists as MCP tools, so agent hosts can
// inspect and reorder collections with the same resolution rules the
// interactive engine applies.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/engine"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// ListResponse is the unified structure returned by list-reading tools.
type ListResponse struct {
	List  string        `json:"list" jsonschema_description:"The list ID"`
	Items []domain.Item `json:"items" jsonschema_description:"Items sorted by order"`
}

// MoveResponse is returned by the move_item tool.
type MoveResponse struct {
	List  string        `json:"list" jsonschema_description:"The list ID"`
	Moved bool          `json:"moved" jsonschema_description:"Whether the drop changed the order"`
	Items []domain.Item `json:"items" jsonschema_description:"Items after resolution"`
}

// Server wraps an OrderStore and exposes it as an MCP Server.
type Server struct {
	store     ports.OrderStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.OrderStore) *Server {
	s := &Server{
		store:     store,
		mcpServer: server.NewMCPServer("espalier-mcp", strings.TrimSpace(espalier.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
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

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

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
	// TOOL: list_items
	listTool := mcp.NewTool("list_items",
		mcp.WithDescription("Read a list's items sorted by their order field."),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("The list to read")),
		mcp.WithOutputSchema[ListResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListItems))

	// TOOL: move_item
	moveTool := mcp.NewTool("move_item",
		mcp.WithDescription("Drop one item onto another; the dragged item takes the target's position and every order value is recomputed densely."),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("The list to mutate")),
		mcp.WithString("dragged_id", mcp.Required(), mcp.Description("Item being moved")),
		mcp.WithString("target_id", mcp.Required(), mcp.Description("Item whose position it takes")),
		mcp.WithOutputSchema[MoveResponse](),
	)
	s.mcpServer.AddTool(moveTool, mcp.NewStructuredToolHandler(s.handleMoveItem))

	// TOOL: set_order
	setTool := mcp.NewTool("set_order",
		mcp.WithDescription("Replace a list's order wholesale with a full id sequence."),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("The list to mutate")),
		mcp.WithString("order", mcp.Required(), mcp.Description("JSON array of item IDs in desired display order")),
		mcp.WithOutputSchema[ListResponse](),
	)
	s.mcpServer.AddTool(setTool, mcp.NewStructuredToolHandler(s.handleSetOrder))
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		"espalier://lists",
		"Stored lists",
		mcp.WithResourceDescription("IDs of all persisted lists"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate lists: %w", err)
		}
		data, err := json.Marshal(map[string][]string{"lists": ids})
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "espalier://lists",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func (s *Server) handleListItems(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	listID, _ := args["list_id"].(string)
	items, err := s.store.Load(ctx, listID)
	if err != nil {
		return ListResponse{}, describeLoadError(listID, err)
	}
	return ListResponse{List: listID, Items: items}, nil
}

func (s *Server) handleMoveItem(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MoveResponse, error) {
	listID, _ := args["list_id"].(string)
	draggedID, _ := args["dragged_id"].(string)
	targetID, _ := args["target_id"].(string)

	items, err := s.store.Load(ctx, listID)
	if err != nil {
		return MoveResponse{}, describeLoadError(listID, err)
	}

	result, moved := engine.Resolve(items, draggedID, targetID)
	if !moved {
		return MoveResponse{List: listID, Moved: false, Items: items}, nil
	}
	if err := s.store.Save(ctx, listID, result); err != nil {
		return MoveResponse{}, fmt.Errorf("failed to persist new order: %w", err)
	}
	return MoveResponse{List: listID, Moved: true, Items: result}, nil
}

func (s *Server) handleSetOrder(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	listID, _ := args["list_id"].(string)
	orderStr, _ := args["order"].(string)

	var order []string
	if err := json.Unmarshal([]byte(orderStr), &order); err != nil {
		return ListResponse{}, fmt.Errorf("order must be a JSON array of strings: %w", err)
	}

	items, err := s.store.Load(ctx, listID)
	if err != nil {
		return ListResponse{}, describeLoadError(listID, err)
	}
	if len(order) != len(items) {
		return ListResponse{}, fmt.Errorf("order has %d ids, list has %d items", len(order), len(items))
	}

	byID := make(map[string]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]domain.Item, 0, len(items))
	for n, id := range order {
		it, ok := byID[id]
		if !ok {
			return ListResponse{}, fmt.Errorf("unknown id in order: %q", id)
		}
		delete(byID, id)
		it.Order = n
		out = append(out, it)
	}

	if err := s.store.Save(ctx, listID, out); err != nil {
		return ListResponse{}, fmt.Errorf("failed to persist new order: %w", err)
	}
	return ListResponse{List: listID, Items: out}, nil
}

func describeLoadError(listID string, err error) error {
	if errors.Is(err, domain.ErrListNotFound) {
		return fmt.Errorf("list %q does not exist", listID)
	}
	return fmt.Errorf("failed to load list %q: %w", listID, err)
}
