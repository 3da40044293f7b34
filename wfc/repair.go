package wfc

import (
	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// repair heals conflicts in place instead of unwinding the collapse
// timeline. The conflict cells form layer 0; each deeper attempt reopens one
// more concentric layer of collapsed neighbors, recovers the region's
// possibilities, and runs a bounded local backtracking search over it.
// On overall failure the entry state is restored, so failed repair leaves
// every conflict exactly where it was.
func (e *Engine) repair() bool {
	entry := e.snapshot()
	conflicts := e.conflictCells()
	layerOf := make(map[grid.CellID]int, len(conflicts))
	for _, c := range conflicts {
		layerOf[c] = 0
	}
	if e.repairAt([][]grid.CellID{conflicts}, layerOf, 0) {
		e.log.Debug().Int("conflicts", len(conflicts)).Msg("repair succeeded")

		return true
	}
	e.restore(entry)
	e.log.Debug().Int("conflicts", len(conflicts)).Msg("repair failed")

	return false
}

// repairAt attempts a repair with the current layer stack. On search failure
// it extends the stack by one layer and recurses, up to MaxLayerDepth; an
// empty next layer means the region has no collapsed surroundings left to
// reopen.
func (e *Engine) repairAt(layers [][]grid.CellID, layerOf map[grid.CellID]int, depth int) bool {
	e.recoverLayers(layers, layerOf)
	seq := flattenLayers(layers)
	e.opts.OnRepair(depth, len(seq))
	e.log.Debug().Int("depth", depth).Int("region", len(seq)).Msg("repair attempt")
	if e.solveSeq(seq, 0) {
		return true
	}
	if depth >= e.opts.MaxLayerDepth-1 {
		return false
	}
	next := e.expandLayer(layers[len(layers)-1], layerOf)
	if len(next) == 0 {
		return false
	}
	for _, c := range next {
		layerOf[c] = len(layers)
	}

	return e.repairAt(append(layers, next), layerOf, depth+1)
}

// recoverLayers recomputes the possibility set of every layer cell from the
// full catalog, walking the stack from the outermost layer inward. A cell is
// constrained only by neighbors in its own or an outer layer; inner layers
// and cells outside the region count as unconstrained — the search itself
// re-checks candidates against the live neighborhood, frozen surroundings
// included. Status follows the recovered set: Uncollapsed if non-empty,
// Conflict if empty.
func (e *Engine) recoverLayers(layers [][]grid.CellID, layerOf map[grid.CellID]int) {
	for li := len(layers) - 1; li >= 0; li-- {
		for _, c := range layers[li] {
			st := e.cells[c]
			view := e.restrictedView(c, layerOf, li)
			kept := make([]tileset.TileID, 0, len(e.catalog))
			for _, t := range e.catalog {
				if e.tiles.Judge(view, t) {
					kept = append(kept, t)
				}
			}
			wasDecided := st.status != Uncollapsed
			st.poss = kept
			if len(kept) == 0 {
				st.status = Conflict
				st.entropy = 0
				if !wasDecided {
					e.completed++
				}
				continue
			}
			st.status = Uncollapsed
			st.entropy = e.entropyOf(kept)
			if wasDecided {
				e.completed--
			}
		}
	}
}

// restrictedView is neighborView limited to the recovery convention: only
// neighbors in a layer at the same or outer level constrain c.
func (e *Engine) restrictedView(c grid.CellID, layerOf map[grid.CellID]int, level int) [][]tileset.TileID {
	nbs := e.topo.Neighbors(c)
	view := make([][]tileset.TileID, len(nbs))
	for k, n := range nbs {
		if n == grid.NoCell {
			continue
		}
		if nl, ok := layerOf[n]; !ok || nl < level {
			continue
		}
		if st, ok := e.cells[n]; ok {
			view[k] = st.poss
		}
	}

	return view
}

// expandLayer collects the collapsed cells bordering the outermost layer, in
// deterministic layer-then-slot order.
func (e *Engine) expandLayer(outer []grid.CellID, layerOf map[grid.CellID]int) []grid.CellID {
	var next []grid.CellID
	seen := make(map[grid.CellID]bool)
	for _, c := range outer {
		for _, n := range e.topo.Neighbors(c) {
			if n == grid.NoCell || seen[n] {
				continue
			}
			if _, in := layerOf[n]; in {
				continue
			}
			st, ok := e.cells[n]
			if !ok || st.status != Collapsed {
				continue
			}
			seen[n] = true
			next = append(next, n)
		}
	}

	return next
}

// flattenLayers orders the region outermost-first, inner-last, keeping each
// layer's stable order. Cells bordering the frozen surroundings are decided
// first, so the search meets its hardest constraints early.
func flattenLayers(layers [][]grid.CellID) []grid.CellID {
	var seq []grid.CellID
	for li := len(layers) - 1; li >= 0; li-- {
		seq = append(seq, layers[li]...)
	}

	return seq
}

// solveSeq is the bounded local backtracking search: assign seq[i] a tile
// that fits its live neighborhood, recurse on the rest, and roll back to the
// frame's snapshot when a branch dies. The final cell commits its first
// fitting tile directly — nothing downstream needs options kept open, so no
// snapshot is taken for it.
func (e *Engine) solveSeq(seq []grid.CellID, i int) bool {
	if i == len(seq) {
		return true
	}
	c := seq[i]
	st := e.cells[c]
	if len(st.poss) == 0 {
		return false
	}
	if i == len(seq)-1 {
		for _, t := range st.poss {
			if e.judgeAt(c, t) {
				e.applyCollapse(c, st, t)

				return true
			}
		}

		return false
	}
	candidates := append([]tileset.TileID(nil), st.poss...)
	snap := e.snapshot()
	for _, t := range candidates {
		if !e.judgeAt(c, t) {
			continue
		}
		e.applyCollapse(c, st, t)
		if e.solveSeq(seq, i+1) {
			return true
		}
		e.restore(snap)
	}

	return false
}
