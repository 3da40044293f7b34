// Package wfc_test repair scenarios: unresolvable conflicts, layered healing
// that overrides a forced cell, and the depth bound.
package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
	"github.com/katalvlaran/wfcgrid/wfc"
)

// clashSet is a catalog with no compatible ordered pair at all: any two
// adjacent cells contradict, so conflicts on a connected grid are terminal.
func clashSet(t *testing.T) *tileset.Set[string] {
	t.Helper()
	set, err := tileset.NewSet[string](grid.Orthogonal4())
	require.NoError(t, err)
	_, err = set.AddTile(1, "a", "b", "c", "d")
	require.NoError(t, err)
	_, err = set.AddTile(1, "e", "f", "g", "h")
	require.NoError(t, err)

	return set
}

// chainSet is the 1×3 repair catalog: T0 chains east into T1 only, T1 chains
// into nothing, and T2 chains into itself. The only full line is T2 T2 T2,
// so a forced T0 at the west end must be swapped away by repair.
func chainSet(t *testing.T) *tileset.Set[string] {
	t.Helper()
	set, err := tileset.NewSet[string](grid.Orthogonal4())
	require.NoError(t, err)
	_, err = set.AddTile(1, "a", "s", "z", "s") // T0: E=a, W=z
	require.NoError(t, err)
	_, err = set.AddTile(1, "b", "s", "a", "s") // T1: E=b, W=a
	require.NoError(t, err)
	_, err = set.AddTile(1, "c", "s", "c", "s") // T2: E=c, W=c
	require.NoError(t, err)

	return set
}

// TestRepair_Unresolvable forces a conflict no layer depth can heal: with
// clashSet, collapsing one of two adjacent cells empties the other, and no
// reassignment of the pair is consistent (P8: the conflict survives).
func TestRepair_Unresolvable(t *testing.T) {
	t.Parallel()

	topo, err := grid.NewOrthogonal2D(2, 1)
	require.NoError(t, err)
	set := clashSet(t)

	var attempts []int
	e, err := wfc.New(topo, set,
		wfc.WithRandomSeed(1),
		wfc.WithOnRepair(func(depth, _ int) { attempts = append(attempts, depth) }),
	)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	require.NoError(t, e.PreCollapse(0, 0))
	st, err := e.CellState(1)
	require.NoError(t, err)
	require.Equal(t, wfc.Conflict, st.Status)
	require.Equal(t, 2, e.Completed())

	res, err := e.Step()
	require.NoError(t, err)
	require.Equal(t, wfc.StepConflictResolutionFailed, res)
	require.LessOrEqual(t, len(attempts), wfc.DefaultMaxLayerDepth)

	// Failed repair restores the entry state: the conflict is untouched.
	st, err = e.CellState(1)
	require.NoError(t, err)
	require.Equal(t, wfc.Conflict, st.Status)
	tile, ok := e.CollapsedTile(0)
	require.True(t, ok)
	require.Equal(t, tileset.TileID(0), tile)
	require.False(t, e.IsComplete())

	require.ErrorIs(t, e.Run(), wfc.ErrUnresolvableConflicts)
}

// TestRepair_SwapsForcedCell heals a conflict by reopening layers until the
// forced west cell itself is reconsidered: the line 1×3 only solves as
// T2 T2 T2, two layers out from the conflict.
func TestRepair_SwapsForcedCell(t *testing.T) {
	t.Parallel()

	topo, err := grid.NewOrthogonal2D(3, 1)
	require.NoError(t, err)
	set := chainSet(t)

	var attempts []int
	e, err := wfc.New(topo, set,
		wfc.WithRandomSeed(1),
		wfc.WithOnRepair(func(depth, _ int) { attempts = append(attempts, depth) }),
	)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	// Forcing T0 pins the middle to T1 and starves the east end.
	require.NoError(t, e.PreCollapse(0, 0))
	st, err := e.CellState(2)
	require.NoError(t, err)
	require.Equal(t, wfc.Conflict, st.Status)

	res, err := e.Step()
	require.NoError(t, err)
	require.Equal(t, wfc.StepConflictsResolved, res)
	require.Equal(t, []int{0, 1, 2}, attempts)

	for _, c := range topo.Cells() {
		tile, ok := e.CollapsedTile(c)
		require.True(t, ok)
		require.Equal(t, tileset.TileID(2), tile, "cell %d", c)
	}
	requireCompatible(t, e, topo, set)

	res, err = e.Step()
	require.NoError(t, err)
	require.Equal(t, wfc.StepComplete, res)
	require.True(t, e.IsComplete())
}

// TestRepair_DepthBound fails the same scenario when the layer budget stops
// one short of the forced cell.
func TestRepair_DepthBound(t *testing.T) {
	t.Parallel()

	topo, err := grid.NewOrthogonal2D(3, 1)
	require.NoError(t, err)
	set := chainSet(t)

	e, err := wfc.New(topo, set, wfc.WithRandomSeed(1), wfc.WithMaxLayerDepth(2))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.PreCollapse(0, 0))

	res, err := e.Step()
	require.NoError(t, err)
	require.Equal(t, wfc.StepConflictResolutionFailed, res)

	// The forced cell kept its tile; the east end is still starved.
	tile, ok := e.CollapsedTile(0)
	require.True(t, ok)
	require.Equal(t, tileset.TileID(0), tile)
	st, err := e.CellState(2)
	require.NoError(t, err)
	require.Equal(t, wfc.Conflict, st.Status)
}

// TestRepair_CornersOnSquare forces awkward corners on a 3×3 pipes grid and
// checks that the run still converges to a compatible tiling, with repair
// stepping in if propagation corners itself.
func TestRepair_CornersOnSquare(t *testing.T) {
	t.Parallel()

	topo, err := grid.NewOrthogonal2D(3, 3)
	require.NoError(t, err)
	set := tileset.Pipes()

	for seed := uint64(0); seed < 20; seed++ {
		e, err := wfc.New(topo, set, wfc.WithRandomSeed(seed))
		require.NoError(t, err)
		require.NoError(t, e.Initialize())

		// Corners: two crosses on one diagonal, two empties on the other.
		require.NoError(t, e.PreCollapse(0, tileset.PipeCross))
		require.NoError(t, e.PreCollapse(8, tileset.PipeCross))
		for _, c := range []grid.CellID{2, 6} {
			st, err := e.CellState(c)
			require.NoError(t, err)
			if st.Status == wfc.Uncollapsed && contains(st.Possibilities, tileset.PipeEmpty) {
				require.NoError(t, e.PreCollapse(c, tileset.PipeEmpty))
			}
		}

		require.NoError(t, e.Run())
		require.True(t, e.IsComplete())
		requireCompatible(t, e, topo, set)
	}
}

// contains reports whether t occurs in poss.
func contains(poss []tileset.TileID, t tileset.TileID) bool {
	for _, p := range poss {
		if p == t {
			return true
		}
	}

	return false
}
