package espalier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/espalier/internal/engine"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// Engine is the high-level entry point for the Espalier library. It owns
// a snapshot of the collection, the single drag session, and the wiring
// to hooks and the Reorder Sink.
//
// The collection itself belongs to the host: the engine only reads it
// during a drag and replaces its snapshot wholesale when a drop lands.
// One Engine serves one list; render multiple independent lists with one
// Engine each.
type Engine struct {
	mu      sync.Mutex
	listID  string
	items   []domain.Item
	machine *engine.Machine
	sink    ports.ReorderSink
	hooks   []domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSink sets the Reorder Sink invoked once per completed drag.
func WithSink(sink ports.ReorderSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithStore wires an OrderStore as the Reorder Sink: every completed
// drag persists the new order under the engine's list ID.
func WithStore(store ports.OrderStore) Option {
	return WithSink(StoreSink(store))
}

// WithLifecycleHooks registers observability hooks. May be given more
// than once; all registered hook sets fire.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDisabled starts the engine in disabled mode: drags cannot begin
// until SetDisabled(false).
func WithDisabled() Option {
	return func(e *Engine) {
		e.machine.SetDisabled(true)
	}
}

// StoreSink returns a ReorderSink that persists the collection to an
// OrderStore.
func StoreSink(store ports.OrderStore) ports.ReorderSink {
	return ports.SinkFunc(func(ctx context.Context, listID string, items []domain.Item) error {
		return store.Save(ctx, listID, items)
	})
}

// New initializes an Engine for one list. The items slice is copied;
// later external changes reach the engine only through SetItems.
func New(listID string, items []domain.Item, opts ...Option) *Engine {
	e := &Engine{
		listID:  listID,
		items:   domain.CloneItems(items),
		machine: engine.NewMachine(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	e.logger = e.logger.With("list", listID)
	return e
}

// ListID returns the list this engine serves.
func (e *Engine) ListID() string {
	return e.listID
}

// SetItems replaces the engine's collection snapshot wholesale. The host
// calls this after external mutations (create, delete, sink rollback).
func (e *Engine) SetItems(items []domain.Item) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = domain.CloneItems(items)
}

// Items returns a copy of the collection sorted by order.
func (e *Engine) Items() []domain.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := domain.CloneItems(e.items)
	domain.SortByOrder(out)
	return out
}

// SetDisabled toggles disabled mode. While disabled, Start refuses to
// lift items; Cancel still terminates an in-flight gesture.
func (e *Engine) SetDisabled(disabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.SetDisabled(disabled)
}

// Dragging reports whether a drag session is alive.
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.machine.Dragging()
}

// Start lifts an item. Ignored when disabled, when a session is already
// alive, or when itemID is not in the collection.
func (e *Engine) Start(ctx context.Context, itemID string, origin domain.Coordinate) {
	e.mu.Lock()
	if domain.IndexOf(e.items, itemID) < 0 {
		e.mu.Unlock()
		e.logger.Debug("start ignored: unknown item", "item", itemID)
		return
	}
	ok := e.machine.Start(itemID, origin)
	e.mu.Unlock()
	if !ok {
		return
	}

	e.logger.Debug("drag started", "item", itemID)
	e.emitDrag(ctx, domain.EventDragStart, itemID, "")
}

// Move updates the hover target. overID may be empty (hovering over
// nothing). A reference to an item no longer in the collection cancels
// the gesture instead of pointing at a stale index.
func (e *Engine) Move(ctx context.Context, overID string) {
	e.mu.Lock()
	if !e.machine.Dragging() {
		e.mu.Unlock()
		return
	}
	if overID != "" && domain.IndexOf(e.items, overID) < 0 {
		sess, _ := e.machine.Cancel()
		e.mu.Unlock()
		e.logger.Debug("move over unknown item, cancelling", "over", overID)
		e.emitDrag(ctx, domain.EventDragCancel, sess.DraggedID, "")
		return
	}
	changed := e.machine.Over(overID)
	sess, _ := e.machine.Session()
	e.mu.Unlock()

	if changed {
		e.emitDrag(ctx, domain.EventDragOver, sess.DraggedID, sess.OverID)
	}
}

// End drops the dragged item onto targetID and settles the collection.
// Self-drops and empty targets leave the collection untouched and skip
// the sink; unknown references behave as cancel. The returned error is
// the sink's, never the engine's own.
func (e *Engine) End(ctx context.Context, targetID string) error {
	e.mu.Lock()
	sess, ok := e.machine.End()
	if !ok {
		e.mu.Unlock()
		return nil
	}

	// The host may have mutated the collection mid-drag. Abort safely
	// when either end of the drop vanished.
	if domain.IndexOf(e.items, sess.DraggedID) < 0 ||
		(targetID != "" && domain.IndexOf(e.items, targetID) < 0) {
		e.mu.Unlock()
		e.logger.Debug("drop aborted: stale reference", "item", sess.DraggedID, "target", targetID)
		e.emitDrag(ctx, domain.EventDragCancel, sess.DraggedID, "")
		return nil
	}

	from, to := engine.Indices(e.items, sess.DraggedID, targetID)
	result, moved := engine.Resolve(e.items, sess.DraggedID, targetID)
	if moved {
		e.items = result
	}
	snapshot := domain.CloneItems(e.items)
	e.mu.Unlock()

	e.emitDrop(ctx, &domain.DropEvent{
		EventBase: eventBase(domain.EventDrop, e.listID),
		ItemID:    sess.DraggedID,
		TargetID:  targetID,
		From:      from,
		To:        to,
		Applied:   moved,
		Duration:  time.Since(sess.StartedAt),
	})

	if !moved {
		e.logger.Debug("drop was a no-op", "item", sess.DraggedID, "target", targetID)
		return nil
	}

	e.logger.Info("reordered", "item", sess.DraggedID, "from", from, "to", to)
	if e.sink == nil {
		return nil
	}
	if err := e.sink.Apply(ctx, e.listID, snapshot); err != nil {
		e.logger.Warn("reorder sink rejected the new order", "error", err)
		return fmt.Errorf("reorder sink: %w", err)
	}
	return nil
}

// Cancel discards the current drag session without reordering. Safe to
// call at any time, including while Idle or disabled.
func (e *Engine) Cancel(ctx context.Context) {
	e.mu.Lock()
	sess, ok := e.machine.Cancel()
	e.mu.Unlock()
	if !ok {
		return
	}
	e.logger.Debug("drag cancelled", "item", sess.DraggedID)
	e.emitDrag(ctx, domain.EventDragCancel, sess.DraggedID, "")
}

// ItemState is the per-item view handed to the rendering layer: the item
// plus the two flags that drive drag styling. It is a pure read path;
// rendering never feeds back into the engine except through input.
type ItemState struct {
	domain.Item
	IsDragging    bool
	IsDraggedOver bool
}

// Snapshot projects the collection for rendering, sorted by order, with
// drag flags reflecting the live session (if any).
func (e *Engine) Snapshot() []ItemState {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := domain.CloneItems(e.items)
	domain.SortByOrder(items)
	sess, dragging := e.machine.Session()

	out := make([]ItemState, len(items))
	for n, it := range items {
		out[n] = ItemState{
			Item:          it,
			IsDragging:    dragging && it.ID == sess.DraggedID,
			IsDraggedOver: dragging && sess.OverID != "" && it.ID == sess.OverID,
		}
	}
	return out
}

func eventBase(t domain.EventType, listID string) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, ListID: listID}
}

func (e *Engine) emitDrag(ctx context.Context, t domain.EventType, itemID, overID string) {
	ev := &domain.DragEvent{EventBase: eventBase(t, e.listID), ItemID: itemID, OverID: overID}
	for _, h := range e.hooks {
		switch t {
		case domain.EventDragStart:
			if h.OnDragStart != nil {
				h.OnDragStart(ctx, ev)
			}
		case domain.EventDragOver:
			if h.OnDragOver != nil {
				h.OnDragOver(ctx, ev)
			}
		case domain.EventDragCancel:
			if h.OnDragCancel != nil {
				h.OnDragCancel(ctx, ev)
			}
		}
	}
}

func (e *Engine) emitDrop(ctx context.Context, ev *domain.DropEvent) {
	for _, h := range e.hooks {
		if h.OnDrop != nil {
			h.OnDrop(ctx, ev)
		}
	}
}
