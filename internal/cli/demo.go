package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/pkg/adapters/file"
	"github.com/aretw0/espalier/pkg/domain"
)

// DemoOptions contains the configuration for the demo command.
type DemoOptions struct {
	Dir      string
	ListID   string
	Debug    bool
	Disabled bool
}

const demoHelp = `# Espalier Demo

Drag cards with the mouse to reorder them.

- **Press and hold** a card to lift it.
- **Move** over another card to preview the landing slot.
- **Release** to drop. Orders are recomputed and saved.
- **Esc** or **q** quits; an in-flight drag is discarded.
`

// RunDemo runs an interactive drag-and-drop session in the terminal.
// Changes are persisted to the list store on every completed drop.
func RunDemo(opts DemoOptions) error {
	logger := createLogger(opts.Debug)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires an interactive terminal")
	}

	tui.PrintBanner()
	if rendered, err := tui.NewRenderer()(demoHelp); err == nil {
		fmt.Print(rendered)
	}

	store := file.New(opts.Dir)
	items, err := store.Load(context.Background(), opts.ListID)
	if err != nil {
		if !errors.Is(err, domain.ErrListNotFound) {
			return fmt.Errorf("failed to load list %q: %w", opts.ListID, err)
		}
		items = seedItems()
		if err := store.Save(context.Background(), opts.ListID, items); err != nil {
			return fmt.Errorf("failed to seed list %q: %w", opts.ListID, err)
		}
		printSystemMessage("Created demo list '%s'.", opts.ListID)
	}

	engineOpts := []espalier.Option{
		espalier.WithStore(store),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, espalier.WithLogger(logger))
		engineOpts = append(engineOpts, espalier.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if opts.Disabled {
		engineOpts = append(engineOpts, espalier.WithDisabled())
	}

	eng := espalier.New(opts.ListID, items, engineOpts...)

	p := tea.NewProgram(tui.NewModel(eng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo session failed: %w", err)
	}

	final := eng.Snapshot()
	ids := make([]string, 0, len(final))
	for _, st := range final {
		ids = append(ids, st.ID)
	}
	printSystemMessage("Final order: %s", strings.Join(ids, ", "))
	return nil
}

func seedItems() []domain.Item {
	labels := []string{"Plant the rootstock", "Tie the first cordon", "Prune the leader", "Thin the spurs", "Harvest"}
	items := make([]domain.Item, len(labels))
	for n, label := range labels {
		items[n] = domain.Item{
			ID:      fmt.Sprintf("task-%d", n+1),
			Order:   n,
			Payload: map[string]any{"title": label},
		}
	}
	return items
}
