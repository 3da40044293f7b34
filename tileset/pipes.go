package tileset

import "github.com/katalvlaran/wfcgrid/grid"

// Edge labels of the pipe catalog.
const (
	// PipeOpen marks an edge a pipe runs through.
	PipeOpen = "pipe"
	// PipeClosed marks a blank edge.
	PipeClosed = "none"
)

// Pipe tile IDs in catalog order, matching the Pipes constructor.
const (
	PipeEmpty TileID = iota
	PipeCross
	PipeStraightEW
	PipeStraightNS
	PipeTeeE
	PipeTeeS
	PipeTeeW
	PipeTeeN
)

// Pipes returns the classic eight-tile pipe catalog over the Orthogonal4
// scheme: an empty tile, a crossing, two straights, and four tees (each tee
// named after its closed side). Edge labels are PipeOpen/PipeClosed in slot
// order E, S, W, N; compatibility is label equality, so pipes continue into
// pipes and blanks face blanks. The empty tile is weighted heaviest, giving
// sparse layouts.
func Pipes() *Set[string] {
	s, err := NewSet[string](grid.Orthogonal4())
	if err != nil {
		// Orthogonal4 is a valid scheme; this cannot fail.
		panic(err)
	}
	add := func(weight int, e, so, w, n string) {
		if _, err = s.AddTile(weight, e, so, w, n); err != nil {
			panic(err)
		}
	}
	add(4, PipeClosed, PipeClosed, PipeClosed, PipeClosed) // PipeEmpty
	add(1, PipeOpen, PipeOpen, PipeOpen, PipeOpen)         // PipeCross
	add(2, PipeOpen, PipeClosed, PipeOpen, PipeClosed)     // PipeStraightEW
	add(2, PipeClosed, PipeOpen, PipeClosed, PipeOpen)     // PipeStraightNS
	add(1, PipeClosed, PipeOpen, PipeOpen, PipeOpen)       // PipeTeeE
	add(1, PipeOpen, PipeClosed, PipeOpen, PipeOpen)       // PipeTeeS
	add(1, PipeOpen, PipeOpen, PipeClosed, PipeOpen)       // PipeTeeW
	add(1, PipeOpen, PipeOpen, PipeOpen, PipeClosed)       // PipeTeeN
	return s
}
