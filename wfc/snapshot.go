package wfc

import (
	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// snapshot captures the full per-cell state map and the completed count.
// Seeds and per-cell random values are part of the copy but immutable, so
// restore brings back a bit-identical state. Snapshots exist only inside the
// repair search; no global history is kept.
type snapshot struct {
	cells     map[grid.CellID]cellState
	completed int
}

// snapshot deep-copies the engine state.
// Complexity: O(C×P) time and memory.
func (e *Engine) snapshot() *snapshot {
	snap := &snapshot{
		cells:     make(map[grid.CellID]cellState, len(e.cells)),
		completed: e.completed,
	}
	for id, st := range e.cells {
		cp := *st
		cp.poss = append([]tileset.TileID(nil), st.poss...)
		snap.cells[id] = cp
	}

	return snap
}

// restore writes a snapshot back over the live state. Cell state pointers
// keep their identity; possibility slices are re-copied so one snapshot can
// be restored any number of times.
// Complexity: O(C×P).
func (e *Engine) restore(snap *snapshot) {
	e.completed = snap.completed
	for id, saved := range snap.cells {
		st := e.cells[id]
		*st = saved
		st.poss = append([]tileset.TileID(nil), saved.poss...)
	}
}
