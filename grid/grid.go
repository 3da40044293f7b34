// Package grid provides the System type: a finite cell graph whose neighbor
// lists are ordered by local direction. Slot order is fixed at creation time
// and never changes, which is what lets a WFC tile's edge list and a cell's
// neighbor list share one index space.
package grid

import (
	"fmt"
)

// System is a direction-indexed cell graph. Cells are created with AddCell;
// neighbor slots are appended in creation order, so the k-th Connect (or
// ConnectBoundary) call for a cell fills local direction k. Once built, a
// System is meant to be read-only.
type System struct {
	scheme Scheme
	slots  [][]CellID
}

// New returns an empty System using the given direction scheme.
// Returns ErrBadScheme if the scheme is malformed.
func New(scheme Scheme) (*System, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}

	return &System{scheme: scheme}, nil
}

// Scheme returns the direction scheme the system was built with.
func (s *System) Scheme() Scheme { return s.scheme }

// AddCell creates a new cell with no neighbor slots and returns its ID.
// IDs are dense and assigned in creation order.
// Complexity: O(1) amortized.
func (s *System) AddCell() CellID {
	s.slots = append(s.slots, make([]CellID, 0, s.scheme.Degree))

	return CellID(len(s.slots) - 1)
}

// AddCells creates n cells and returns their IDs in creation order.
func (s *System) AddCells(n int) []CellID {
	ids := make([]CellID, n)
	for i := range ids {
		ids[i] = s.AddCell()
	}

	return ids
}

// Contains reports whether c names a cell of this system.
// Complexity: O(1).
func (s *System) Contains(c CellID) bool {
	return c >= 0 && int(c) < len(s.slots)
}

// Connect appends a neighbor slot from→to at from's next free local direction.
// Returns ErrCellNotFound, ErrSelfLoop, or ErrDegreeExceeded.
// Note: Connect creates one directed slot; the caller is responsible for
// creating the reverse slot at the paired direction (builders do this).
// Complexity: O(1) amortized.
func (s *System) Connect(from, to CellID) error {
	if !s.Contains(from) || !s.Contains(to) {
		return ErrCellNotFound
	}
	if from == to {
		return ErrSelfLoop
	}

	return s.appendSlot(from, to)
}

// ConnectBoundary appends a boundary slot (NoCell) at from's next free local
// direction, marking that direction as unconstrained.
// Returns ErrCellNotFound or ErrDegreeExceeded.
func (s *System) ConnectBoundary(from CellID) error {
	if !s.Contains(from) {
		return ErrCellNotFound
	}

	return s.appendSlot(from, NoCell)
}

// appendSlot stores the next slot of from, enforcing the scheme degree.
func (s *System) appendSlot(from, to CellID) error {
	if len(s.slots[from]) >= s.scheme.Degree {
		return fmt.Errorf("%w: cell %d", ErrDegreeExceeded, from)
	}
	s.slots[from] = append(s.slots[from], to)

	return nil
}

// Cells returns all cell IDs in creation order. The slice is freshly
// allocated on every call.
// Complexity: O(C).
func (s *System) Cells() []CellID {
	ids := make([]CellID, len(s.slots))
	for i := range ids {
		ids[i] = CellID(i)
	}

	return ids
}

// Neighbors returns the direction-indexed neighbor slots of c. Slot k holds
// the neighbor in local direction k, or NoCell for a boundary. The returned
// slice is owned by the System and must not be modified.
// Returns nil for an unknown cell.
// Complexity: O(1).
func (s *System) Neighbors(c CellID) []CellID {
	if !s.Contains(c) {
		return nil
	}

	return s.slots[c]
}

// NeighborAt returns the neighbor of c in local direction dir.
// The second result is false when c is unknown, dir is out of range,
// or the slot is a boundary.
// Complexity: O(1).
func (s *System) NeighborAt(c CellID, dir int) (CellID, bool) {
	if !s.Contains(c) || dir < 0 || dir >= len(s.slots[c]) {
		return NoCell, false
	}
	n := s.slots[c][dir]

	return n, n != NoCell
}

// CellCount returns the number of cells.
func (s *System) CellCount() int { return len(s.slots) }

// EdgeCount returns the number of directed non-boundary slots.
// Complexity: O(C×D).
func (s *System) EdgeCount() int {
	var n int
	for _, row := range s.slots {
		for _, to := range row {
			if to != NoCell {
				n++
			}
		}
	}

	return n
}

// Validate checks structural bidirectionality: for every slot k of cell c
// holding a real neighbor n, slot Reverse[k] of n must hold c.
// Returns ErrAsymmetricEdge naming the offending pair, or nil.
// Complexity: O(C×D).
func (s *System) Validate() error {
	for c, row := range s.slots {
		for k, n := range row {
			if n == NoCell {
				continue
			}
			rk := s.scheme.Reverse[k]
			back := s.slots[n]
			if rk >= len(back) || back[rk] != CellID(c) {
				return fmt.Errorf("%w: %d→%d at direction %d", ErrAsymmetricEdge, c, n, k)
			}
		}
	}

	return nil
}

// Stats summarizes a built System.
type Stats struct {
	Cells    int // number of cells
	Edges    int // directed non-boundary slots
	Boundary int // boundary slots
}

// Stats returns cell, edge, and boundary slot counts.
// Complexity: O(C×D).
func (s *System) Stats() Stats {
	st := Stats{Cells: len(s.slots)}
	for _, row := range s.slots {
		for _, to := range row {
			if to == NoCell {
				st.Boundary++
			} else {
				st.Edges++
			}
		}
	}

	return st
}

// String renders Stats in a single line, e.g. "cells=9 edges=24 boundary=12".
func (st Stats) String() string {
	return fmt.Sprintf("cells=%d edges=%d boundary=%d", st.Cells, st.Edges, st.Boundary)
}
