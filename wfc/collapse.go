package wfc

import (
	"fmt"

	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// collapseOnce selects the minimum-entropy uncollapsed cell, samples one of
// its tiles by weight, applies the collapse, and propagates the restriction.
func (e *Engine) collapseOnce() error {
	c, st, err := e.minEntropyCell()
	if err != nil {
		return err
	}
	e.applyCollapse(c, st, e.sampleTile(st))
	e.propagate(c)

	return nil
}

// minEntropyCell returns the first uncollapsed cell with minimal entropy in
// topology order; the first-found tie-break keeps runs deterministic.
// Returns ErrNoUncollapsedCells from corrupt state only.
// Complexity: O(C).
func (e *Engine) minEntropyCell() (grid.CellID, *cellState, error) {
	var (
		best   grid.CellID
		bestSt *cellState
	)
	for _, c := range e.order {
		st := e.cells[c]
		if st.status != Uncollapsed {
			continue
		}
		if bestSt == nil || st.entropy < bestSt.entropy {
			best, bestSt = c, st
		}
	}
	if bestSt == nil {
		return 0, nil, fmt.Errorf("%w: %d of %d cells completed", ErrNoUncollapsedCells, e.completed, len(e.order))
	}

	return best, bestSt, nil
}

// sampleTile picks a tile from st's possibilities by cumulative weight:
// with W the weight sum, the cell's fixed random value is reduced mod W and
// the walk selects the first tile whose running sum strictly exceeds it.
// A zero-weight sum selects the first possibility.
// Complexity: O(P).
func (e *Engine) sampleTile(st *cellState) tileset.TileID {
	var total uint64
	for _, t := range st.poss {
		total += uint64(e.weights[t])
	}
	if total == 0 {
		return st.poss[0]
	}
	r := uint64(st.rnd) % total
	var acc uint64
	for _, t := range st.poss {
		acc += uint64(e.weights[t])
		if acc > r {
			return t
		}
	}
	// Unreachable: the last running sum equals W > r.
	return st.poss[len(st.poss)-1]
}

// applyCollapse pins cell c to tile t: one possibility, zero entropy,
// Collapsed status. Cells entering from Uncollapsed count as completed.
func (e *Engine) applyCollapse(c grid.CellID, st *cellState, t tileset.TileID) {
	if st.status == Uncollapsed {
		e.completed++
	}
	st.status = Collapsed
	st.poss = []tileset.TileID{t}
	st.entropy = 0
	e.opts.OnCollapse(c, t)
	e.log.Debug().Int("cell", int(c)).Int("tile", int(t)).Msg("collapsed")
}
