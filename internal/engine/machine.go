// Package engine implements the drag state machine and the drop
// resolution algorithm. It is pure and synchronous: no I/O, no platform
// types, no knowledge of how events were produced.
package engine

import (
	"time"

	"github.com/aretw0/espalier/pkg/domain"
)

// Machine owns the single optional drag session. Two states exist:
// Idle (session == nil) and Dragging. Every Dragging episode terminates
// through exactly one End or Cancel before a new Start is accepted,
// which is what keeps the host's drag visuals from getting stuck.
type Machine struct {
	session  *domain.Session
	disabled bool
}

// NewMachine returns a machine in the Idle state.
func NewMachine() *Machine {
	return &Machine{}
}

// Dragging reports whether a session is alive.
func (m *Machine) Dragging() bool {
	return m.session != nil
}

// Session returns a copy of the live session. ok is false while Idle.
func (m *Machine) Session() (domain.Session, bool) {
	if m.session == nil {
		return domain.Session{}, false
	}
	return *m.session, true
}

// SetDisabled toggles the disabled flag. While disabled, Start is
// refused; Cancel still works so a gesture in flight when the flag
// flips can terminate safely.
func (m *Machine) SetDisabled(disabled bool) {
	m.disabled = disabled
}

// Disabled reports the disabled flag.
func (m *Machine) Disabled() bool {
	return m.disabled
}

// Start lifts an item, creating the session. It reports false without
// state change when the machine is disabled or a session is already
// alive (nested drags are ignored, the original session continues).
func (m *Machine) Start(itemID string, origin domain.Coordinate) bool {
	if m.disabled || m.session != nil || itemID == "" {
		return false
	}
	m.session = &domain.Session{
		DraggedID: itemID,
		Origin:    origin,
		StartedAt: time.Now(),
	}
	return true
}

// Over updates the hover target. An item cannot be dragged over itself:
// overID equal to the dragged item clears the target instead. Reports
// whether the target actually changed.
func (m *Machine) Over(overID string) bool {
	if m.session == nil {
		return false
	}
	if overID == m.session.DraggedID {
		overID = ""
	}
	if m.session.OverID == overID {
		return false
	}
	m.session.OverID = overID
	return true
}

// End terminates the session, returning its final value. ok is false
// when the machine was already Idle. The caller resolves the drop; the
// machine resets to Idle regardless of the outcome.
func (m *Machine) End() (domain.Session, bool) {
	if m.session == nil {
		return domain.Session{}, false
	}
	s := *m.session
	m.session = nil
	return s, true
}

// Cancel discards the session without resolving a drop. Idempotent:
// cancelling while Idle is a no-op. Reports whether a session existed.
func (m *Machine) Cancel() (domain.Session, bool) {
	if m.session == nil {
		return domain.Session{}, false
	}
	s := *m.session
	m.session = nil
	return s, true
}
