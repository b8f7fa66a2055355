package engine

import "github.com/aretw0/espalier/pkg/domain"

// Resolve computes the result of dropping draggedID onto targetID.
//
// The input collection is read as a snapshot sorted by (order, id) and is
// never mutated. Semantics are remove-then-insert: the dragged item is
// removed from its position and inserted at the target's position in the
// shortened sequence, shifting subsequent items right. Every item is then
// reassigned order = position, restoring the dense permutation even for
// items that did not move.
//
// moved is false (and items nil) for self-drops, unknown ids and empty
// targets; the caller must not invoke the sink in that case.
func Resolve(items []domain.Item, draggedID, targetID string) (result []domain.Item, moved bool) {
	if draggedID == "" || targetID == "" || draggedID == targetID {
		return nil, false
	}

	sorted := domain.CloneItems(items)
	domain.SortByOrder(sorted)

	source := domain.IndexOf(sorted, draggedID)
	target := domain.IndexOf(sorted, targetID)
	if source < 0 || target < 0 {
		return nil, false
	}

	dragged := sorted[source]
	rest := append(sorted[:source:source], sorted[source+1:]...)

	result = make([]domain.Item, 0, len(sorted))
	result = append(result, rest[:target]...)
	result = append(result, dragged)
	result = append(result, rest[target:]...)

	for n := range result {
		result[n].Order = n
	}
	return result, true
}

// Indices returns the order-sorted positions of the two ids, for event
// reporting. Either value is -1 when the id is absent.
func Indices(items []domain.Item, draggedID, targetID string) (source, target int) {
	sorted := domain.CloneItems(items)
	domain.SortByOrder(sorted)
	return domain.IndexOf(sorted, draggedID), domain.IndexOf(sorted, targetID)
}
