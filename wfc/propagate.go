package wfc

import (
	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// propagate pushes the restriction of a freshly collapsed (or forced) cell
// through the connected affected region with a worklist. Each cell joins the
// wave at most once, and possibility sets only ever shrink within a wave, so
// the loop is bounded by |cells|×degree×|tiles| judge calls.
//
// A cell whose set shrinks to one collapses on the spot; a cell whose set
// empties flips to Conflict and stays there — propagation never fails, it
// records conflicts for repair to pick up.
func (e *Engine) propagate(from grid.CellID) {
	processed := map[grid.CellID]bool{from: true}
	queue := []grid.CellID{from}
	var wave int
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		wave++
		for _, n := range e.topo.Neighbors(c) {
			if n == grid.NoCell || processed[n] {
				continue
			}
			st, ok := e.cells[n]
			if !ok || st.status != Uncollapsed {
				// Collapsed and Conflict cells are terminal under propagation.
				continue
			}
			if !e.restrict(n, st) {
				continue
			}
			processed[n] = true
			queue = append(queue, n)
		}
	}
	e.log.Debug().Int("cell", int(from)).Int("wave", wave).Msg("propagated")
}

// restrict re-filters cell n's possibilities against its current
// neighborhood and reports whether the set shrank. Shrinking to one
// collapses n; shrinking to zero flips it to Conflict.
func (e *Engine) restrict(n grid.CellID, st *cellState) bool {
	view := e.neighborView(n)
	kept := make([]tileset.TileID, 0, len(st.poss))
	for _, t := range st.poss {
		if e.tiles.Judge(view, t) {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(st.poss) {
		return false
	}
	switch len(kept) {
	case 0:
		st.status = Conflict
		st.poss = kept
		st.entropy = 0
		e.completed++
		e.opts.OnConflict(n)
		e.log.Debug().Int("cell", int(n)).Msg("conflict")
	case 1:
		e.applyCollapse(n, st, kept[0])
	default:
		st.poss = kept
		st.entropy = e.entropyOf(kept)
	}

	return true
}
