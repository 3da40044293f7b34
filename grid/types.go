// Package grid defines core types, direction schemes, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/wfcgrid.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrBadScheme indicates a direction scheme with degree < 1 or a Reverse
	// table that is not a self-inverse permutation of [0, Degree).
	ErrBadScheme = errors.New("grid: invalid direction scheme")
	// ErrCellNotFound indicates an operation referenced a non-existent cell.
	ErrCellNotFound = errors.New("grid: cell not found")
	// ErrSelfLoop indicates an attempt to connect a cell to itself.
	ErrSelfLoop = errors.New("grid: self-loop not allowed")
	// ErrDegreeExceeded indicates a cell already has Degree neighbor slots.
	ErrDegreeExceeded = errors.New("grid: neighbor slots exceed scheme degree")
	// ErrAsymmetricEdge indicates a slot whose reverse slot does not point back.
	ErrAsymmetricEdge = errors.New("grid: edge has no matching reverse slot")
	// ErrEmptyDimensions indicates a builder was given a zero-sized topology.
	ErrEmptyDimensions = errors.New("grid: dimensions must be at least 1")
)

// CellID is a dense, stable handle to a cell within one System.
type CellID int

// NoCell marks a boundary slot: a direction with no neighbor.
// Slots holding NoCell are unconstrained for the solver.
const NoCell CellID = -1

// Local directions of the Orthogonal4 scheme, in slot order.
const (
	DirEast = iota
	DirSouth
	DirWest
	DirNorth
)

// Scheme fixes the local-direction vocabulary shared by a grid and a tile
// catalog: the slot count of a fully-connected cell and the pairing of each
// direction with its opposite.
type Scheme struct {
	// Degree is the number of neighbor slots of an interior cell.
	Degree int
	// Reverse maps a direction index to its opposite; Reverse[Reverse[k]] == k.
	Reverse []int
}

// Validate reports ErrBadScheme unless Degree ≥ 1 and Reverse is a
// self-inverse permutation of [0, Degree).
// Complexity: O(D).
func (sc Scheme) Validate() error {
	if sc.Degree < 1 || len(sc.Reverse) != sc.Degree {
		return ErrBadScheme
	}
	for k, r := range sc.Reverse {
		if r < 0 || r >= sc.Degree || sc.Reverse[r] != k {
			return ErrBadScheme
		}
	}

	return nil
}

// Orthogonal4 returns the four-direction scheme used by rectangular grids:
// slots E, S, W, N with reverse pairs E↔W and S↔N.
func Orthogonal4() Scheme {
	return Scheme{Degree: 4, Reverse: []int{DirWest, DirNorth, DirEast, DirSouth}}
}

// Pair2 returns the two-direction scheme used by ring and line grids:
// slot 0 (next) paired with slot 1 (previous).
func Pair2() Scheme {
	return Scheme{Degree: 2, Reverse: []int{1, 0}}
}
