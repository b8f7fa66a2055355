/*
Package input normalizes device-specific gestures into the engine's single
event vocabulary (start, move, end, cancel).

Two adapters exist, one per input modality:

  - Pointer: for platforms with native drag-and-drop, where drag-over and
    drop events already carry the target item. No hit-testing happens here.
  - Touch: for platforms that only report coordinates. Every move and the
    final release are resolved to an item through an injected
    ports.HitTester, keeping the core free of any platform dependency.

Neither adapter mutates the collection; they only forward normalized
events. The state machine and the reindexing algorithm never branch on
device type.
*/
package input
