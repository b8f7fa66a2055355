package ports

import "github.com/aretw0/espalier/pkg/domain"

// HitTester resolves the topmost registered item under a coordinate.
// Touch input has no native drop-target notion, so the touch adapter
// asks this port on every move and on release. Implementations are
// platform-specific (DOM, terminal cell zones, scene graphs); the core
// never depends on one.
type HitTester interface {
	// Locate returns the item under c, or ok=false when nothing
	// registered is there.
	Locate(c domain.Coordinate) (itemID string, ok bool)
}

// HitTesterFunc adapts a plain function to the HitTester interface.
type HitTesterFunc func(c domain.Coordinate) (string, bool)

// Locate implements HitTester.
func (f HitTesterFunc) Locate(c domain.Coordinate) (string, bool) {
	return f(c)
}
