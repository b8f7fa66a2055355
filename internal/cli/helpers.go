// Package cli hosts the interactive demo session behind the espalier
// command, keeping terminal concerns out of the cobra layer.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout UI).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDragStart: func(ctx context.Context, e *domain.DragEvent) {
			logger.Debug("Drag Start", "item_id", e.ItemID)
		},
		OnDragOver: func(ctx context.Context, e *domain.DragEvent) {
			logger.Debug("Drag Over", "item_id", e.ItemID, "over_id", e.OverID)
		},
		OnDrop: func(ctx context.Context, e *domain.DropEvent) {
			if e.Applied {
				logger.Debug("Drop (Applied)", "item_id", e.ItemID, "from", e.From, "to", e.To)
			} else {
				logger.Debug("Drop (Ignored)", "item_id", e.ItemID)
			}
		},
		OnDragCancel: func(ctx context.Context, e *domain.DragEvent) {
			logger.Debug("Drag Cancel", "item_id", e.ItemID)
		},
	}
}
