// Package http exposes persisted lists over a JSON API. It is the
// "backend" a browser host calls from its Reorder Sink; the drop
// resolution it applies is the same engine algorithm the interactive
// hosts use.
package http

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/espalier/internal/dto"
	"github.com/aretw0/espalier/internal/engine"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

//go:embed openapi.yaml
var specYAML []byte

// Server serves orderable lists from an OrderStore.
type Server struct {
	store  ports.OrderStore
	logger *slog.Logger
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler. Requests are validated against
// the embedded OpenAPI document before reaching the handlers.
func NewHandler(store ports.OrderStore, opts ...Option) (http.Handler, error) {
	s := &Server{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	validate, err := validationMiddleware()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(specYAML)
	})
	r.Group(func(r chi.Router) {
		r.Use(validate)
		r.Get("/lists", s.listLists)
		r.Route("/lists/{listID}", func(r chi.Router) {
			r.Get("/", s.getList)
			r.Put("/", s.putList)
			r.Delete("/", s.deleteList)
			r.Put("/reorder", s.reorderList)
			r.Post("/move", s.moveItem)
		})
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

// listResponse is the JSON shape returned by all list endpoints.
type listResponse struct {
	List  string        `json:"list"`
	Items []domain.Item `json:"items"`
	Moved *bool         `json:"moved,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) listLists(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("list lists failed", "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"lists": ids})
}

func (s *Server) getList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")
	items, err := s.store.Load(r.Context(), listID)
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			http.Error(w, "list not found", http.StatusNotFound)
			return
		}
		s.logger.Error("load failed", "list", listID, "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, listResponse{List: listID, Items: items})
}

func (s *Server) putList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")

	var body struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	items, err := dto.DecodeItems(body.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), listID, items); err != nil {
		s.logger.Error("save failed", "list", listID, "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	s.logger.Info("list replaced", "list", listID, "items", len(items))
	s.writeJSON(w, http.StatusOK, listResponse{List: listID, Items: items})
}

func (s *Server) deleteList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")
	if err := s.store.Delete(r.Context(), listID); err != nil {
		s.logger.Error("delete failed", "list", listID, "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reorderList replaces the order wholesale: the body carries the full id
// sequence in display order, and the id set must match the stored list
// exactly. This is the bulk endpoint an admin UI calls from its sink.
func (s *Server) reorderList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")

	var body struct {
		Order []string `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items, err := s.store.Load(r.Context(), listID)
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			http.Error(w, "list not found", http.StatusNotFound)
			return
		}
		s.logger.Error("load failed", "list", listID, "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	reordered, err := applyOrder(items, body.Order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), listID, reordered); err != nil {
		s.logger.Error("save failed", "list", listID, "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	s.logger.Info("list reordered", "list", listID)
	s.writeJSON(w, http.StatusOK, listResponse{List: listID, Items: reordered})
}

// moveItem applies a single drop server-side with the engine's
// resolution rules. No-op drops (self, unknown ids) return moved=false
// and leave storage untouched.
func (s *Server) moveItem(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")

	var body struct {
		DraggedID string `json:"dragged_id"`
		TargetID  string `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items, err := s.store.Load(r.Context(), listID)
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			http.Error(w, "list not found", http.StatusNotFound)
			return
		}
		s.logger.Error("load failed", "list", listID, "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	result, moved := engine.Resolve(items, body.DraggedID, body.TargetID)
	if !moved {
		s.writeJSON(w, http.StatusOK, listResponse{List: listID, Items: items, Moved: &moved})
		return
	}
	if err := s.store.Save(r.Context(), listID, result); err != nil {
		s.logger.Error("save failed", "list", listID, "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	s.logger.Info("item moved", "list", listID, "item", body.DraggedID, "target", body.TargetID)
	s.writeJSON(w, http.StatusOK, listResponse{List: listID, Items: result, Moved: &moved})
}

// applyOrder permutes items to match the given id sequence, reassigning
// dense order values. The id sets must match exactly.
func applyOrder(items []domain.Item, order []string) ([]domain.Item, error) {
	if len(order) != len(items) {
		return nil, errors.New("order length does not match the stored list")
	}
	byID := make(map[string]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]domain.Item, 0, len(items))
	for n, id := range order {
		it, ok := byID[id]
		if !ok {
			return nil, errors.New("unknown id in order: " + id)
		}
		delete(byID, id)
		it.Order = n
		out = append(out, it)
	}
	return out, nil
}
