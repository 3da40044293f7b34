package grid_test

import (
	"fmt"

	"github.com/katalvlaran/wfcgrid/grid"
)

// ExampleNewOrthogonal2D builds a 3×2 rectangle and inspects the middle of
// the top row. Slot order is E, S, W, N; rim directions hold grid.NoCell.
func ExampleNewOrthogonal2D() {
	s, _ := grid.NewOrthogonal2D(3, 2)

	fmt.Println(s.Stats())
	fmt.Println("neighbors of 1:", s.Neighbors(1))
	east, ok := s.NeighborAt(1, grid.DirEast)
	fmt.Println("east of 1:", east, ok)

	// Output:
	// cells=6 edges=14 boundary=10
	// neighbors of 1: [2 4 0 -1]
	// east of 1: 2 true
}

// ExampleFromBuilder runs a custom Builder: a 1×n line over the Pair2
// scheme, open at both ends.
func ExampleFromBuilder() {
	line := lineBuilder{cells: 4}
	s, err := grid.FromBuilder(grid.Pair2(), line)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	fmt.Println(s.Stats())
	fmt.Println("neighbors of 0:", s.Neighbors(0))
	fmt.Println("neighbors of 2:", s.Neighbors(2))

	// Output:
	// cells=4 edges=6 boundary=2
	// neighbors of 0: [1 -1]
	// neighbors of 2: [3 1]
}

// lineBuilder chains n cells: slot 0 next, slot 1 previous.
type lineBuilder struct {
	cells int
}

func (l lineBuilder) Name() string { return "Line" }

func (l lineBuilder) Build(s *grid.System) error {
	if l.cells < 1 {
		return grid.ErrEmptyDimensions
	}
	ids := s.AddCells(l.cells)
	for i, c := range ids {
		if i+1 < l.cells {
			if err := s.Connect(c, ids[i+1]); err != nil {
				return err
			}
		} else {
			if err := s.ConnectBoundary(c); err != nil {
				return err
			}
		}
		if i > 0 {
			if err := s.Connect(c, ids[i-1]); err != nil {
				return err
			}
		} else {
			if err := s.ConnectBoundary(c); err != nil {
				return err
			}
		}
	}

	return nil
}
