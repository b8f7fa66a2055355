// Package tui renders terminal presentation: the banner, markdown help
// and the interactive drag demo.
//
// The demo is a real host for the engine: bubblezone provides the
// spatial lookup (which card is under the cursor), mouse press/motion/
// release flow through the touch input adapter, and the rendering reads
// ItemState flags only. The reordering logic itself never touches
// terminal types.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/input"
	"github.com/aretw0/espalier/pkg/ports"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(40)

	draggingStyle = cardStyle.
			BorderForeground(lipgloss.Color("205")).
			Faint(true)

	overStyle = cardStyle.
			BorderForeground(lipgloss.Color("86")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// Model is the Bubble Tea model for the drag demo.
type Model struct {
	eng   *espalier.Engine
	touch *input.Touch
	zones *zone.Manager
	done  bool
}

// NewModel creates the demo model around an engine instance.
func NewModel(eng *espalier.Engine) *Model {
	m := &Model{
		eng:   eng,
		zones: zone.New(),
	}
	m.touch = input.NewTouch(eng, ports.HitTesterFunc(m.locate))
	return m
}

// locate is the HitTester: it asks bubblezone which card's zone contains
// the coordinate.
func (m *Model) locate(c domain.Coordinate) (string, bool) {
	probe := tea.MouseMsg{X: int(c.X), Y: int(c.Y)}
	for _, s := range m.eng.Snapshot() {
		if m.zones.Get(s.ID).InBounds(probe) {
			return s.ID, true
		}
	}
	return "", false
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.touch.TouchCancel(ctx)
			m.done = true
			return m, tea.Quit
		case "esc":
			m.touch.TouchCancel(ctx)
		}

	case tea.MouseMsg:
		at := domain.Coordinate{X: float64(msg.X), Y: float64(msg.Y)}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				break
			}
			if id, ok := m.locate(at); ok {
				m.touch.TouchStart(ctx, id, at)
			}
		case tea.MouseActionMotion:
			m.touch.TouchMove(ctx, at)
		case tea.MouseActionRelease:
			// Sink errors surface in logs; the view stays consistent
			// either way.
			_ = m.touch.TouchEnd(ctx, at)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	for _, s := range m.eng.Snapshot() {
		style := cardStyle
		switch {
		case s.IsDragging:
			style = draggingStyle
		case s.IsDraggedOver:
			style = overStyle
		}

		title := s.ID
		if t, ok := s.Payload["title"].(string); ok {
			title = t
		}
		card := style.Render(fmt.Sprintf("%d  %s", s.Order, title))
		b.WriteString(m.zones.Mark(s.ID, card))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("drag cards with the mouse · esc cancels · q quits"))

	// Scan records the marked zones' positions for hit-testing.
	return m.zones.Scan(b.String())
}
