package grid

// Builder assembles cells and neighbor slots inside an empty System.
// Implementations must create each cell's slots in the scheme's local
// direction order, using ConnectBoundary for directions with no neighbor,
// so that every interior cell ends up with exactly Degree slots.
type Builder interface {
	// Build populates s. The system is empty on entry.
	Build(s *System) error
	// Name identifies the topology, e.g. "Orthogonal2D".
	Name() string
}

// FromBuilder creates a System with the given scheme, runs b, and validates
// the result.
// Complexity: O(C×D).
func FromBuilder(scheme Scheme, b Builder) (*System, error) {
	s, err := New(scheme)
	if err != nil {
		return nil, err
	}
	if err = b.Build(s); err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Orthogonal2D builds a Width×Height rectangular grid over the Orthogonal4
// scheme. Cells are created row-major; cell (x,y) has ID y*Width+x. Every
// cell gets exactly four slots in the order E, S, W, N, with boundary slots
// at the rectangle's rim.
type Orthogonal2D struct {
	Width, Height int
}

// Name reports "Orthogonal2D".
func (o Orthogonal2D) Name() string { return "Orthogonal2D" }

// Build populates s with the rectangle. Returns ErrEmptyDimensions when
// either dimension is < 1.
// Complexity: O(W×H).
func (o Orthogonal2D) Build(s *System) error {
	if o.Width < 1 || o.Height < 1 {
		return ErrEmptyDimensions
	}
	cells := s.AddCells(o.Width * o.Height)
	at := func(x, y int) CellID { return cells[y*o.Width+x] }
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			c := at(x, y)
			// Slot order must match Orthogonal4: E, S, W, N.
			steps := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
			for _, d := range steps {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= o.Width || ny < 0 || ny >= o.Height {
					if err := s.ConnectBoundary(c); err != nil {
						return err
					}
					continue
				}
				if err := s.Connect(c, at(nx, ny)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// NewOrthogonal2D builds and validates a w×h rectangular grid.
func NewOrthogonal2D(w, h int) (*System, error) {
	return FromBuilder(Orthogonal4(), Orthogonal2D{Width: w, Height: h})
}

// Ring builds a closed cycle of Cells cells over the Pair2 scheme:
// slot 0 points to the next cell clockwise, slot 1 to the previous one.
// A single-cell ring has two boundary slots.
type Ring struct {
	Cells int
}

// Name reports "Ring".
func (r Ring) Name() string { return "Ring" }

// Build populates s with the cycle. Returns ErrEmptyDimensions when
// Cells < 1.
// Complexity: O(C).
func (r Ring) Build(s *System) error {
	if r.Cells < 1 {
		return ErrEmptyDimensions
	}
	cells := s.AddCells(r.Cells)
	if r.Cells == 1 {
		if err := s.ConnectBoundary(cells[0]); err != nil {
			return err
		}

		return s.ConnectBoundary(cells[0])
	}
	for i, c := range cells {
		next := cells[(i+1)%r.Cells]
		prev := cells[(i-1+r.Cells)%r.Cells]
		if err := s.Connect(c, next); err != nil {
			return err
		}
		if err := s.Connect(c, prev); err != nil {
			return err
		}
	}

	return nil
}

// NewRing builds and validates a closed cycle of n cells.
func NewRing(n int) (*System, error) {
	return FromBuilder(Pair2(), Ring{Cells: n})
}
