// Package wfc defines the solver's core types, injected capabilities, and
// sentinel errors.
package wfc

import (
	"errors"

	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// Sentinel errors surfaced by the engine.
var (
	// ErrGridNil is returned if a nil topology is passed to New.
	ErrGridNil = errors.New("wfc: grid is nil")
	// ErrTileSetNil is returned if a nil tile set is passed to New.
	ErrTileSetNil = errors.New("wfc: tile set is nil")
	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("wfc: invalid option supplied")
	// ErrNoUncollapsedCells indicates a collapse was requested with no
	// uncollapsed cell left. It surfaces only from corrupt state.
	ErrNoUncollapsedCells = errors.New("wfc: no uncollapsed cells")
	// ErrCellNotFound indicates an operation referenced an untracked cell.
	ErrCellNotFound = errors.New("wfc: cell not found")
	// ErrTileNotFound indicates an operation referenced a tile outside the catalog.
	ErrTileNotFound = errors.New("wfc: tile not found")
	// ErrCellAlreadyCollapsed indicates a forced collapse hit a non-uncollapsed cell.
	ErrCellAlreadyCollapsed = errors.New("wfc: cell already collapsed")
	// ErrInvalidTileChoice indicates a forced collapse to a tile outside the
	// cell's current possibility set.
	ErrInvalidTileChoice = errors.New("wfc: tile not in cell possibilities")
	// ErrUnresolvableConflicts indicates repair exhausted its layer depth.
	ErrUnresolvableConflicts = errors.New("wfc: conflicts could not be resolved")
	// ErrInconsistentState indicates engine state violating an internal
	// invariant, e.g. stepping before initialization.
	ErrInconsistentState = errors.New("wfc: inconsistent engine state")
	// ErrInitializationFailed wraps any unrecoverable initialization condition.
	ErrInitializationFailed = errors.New("wfc: initialization failed")
)

// Status is the solver's view of one cell.
type Status int

const (
	// Uncollapsed: two or more tiles remain possible.
	Uncollapsed Status = iota
	// Collapsed: exactly one tile remains.
	Collapsed
	// Conflict: no tile remains possible.
	Conflict
)

// String renders the status name.
func (st Status) String() string {
	switch st {
	case Uncollapsed:
		return "Uncollapsed"
	case Collapsed:
		return "Collapsed"
	case Conflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}

// StepResult reports what one Step did.
type StepResult int

const (
	// StepCollapsed: one cell was collapsed and its restrictions propagated.
	StepCollapsed StepResult = iota
	// StepConflictsResolved: repair healed every conflict.
	StepConflictsResolved
	// StepConflictResolutionFailed: repair exhausted its layer depth.
	StepConflictResolutionFailed
	// StepComplete: every cell is collapsed and conflict-free.
	StepComplete
)

// String renders the step result name.
func (r StepResult) String() string {
	switch r {
	case StepCollapsed:
		return "Collapsed"
	case StepConflictsResolved:
		return "ConflictsResolved"
	case StepConflictResolutionFailed:
		return "ConflictResolutionFailed"
	case StepComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Topology is the grid adjacency capability the solver consumes.
// grid.System satisfies it.
type Topology interface {
	// Cells returns all cell IDs in a stable iteration order.
	Cells() []grid.CellID
	// Neighbors returns the direction-indexed neighbor slots of c:
	// slot k is the neighbor in local direction k, grid.NoCell a boundary.
	Neighbors(c grid.CellID) []grid.CellID
	// Scheme returns the local-direction scheme shared with the tile catalog.
	Scheme() grid.Scheme
}

// TileSet is the tile catalog capability the solver consumes.
// tileset.Set satisfies it for any edge label type.
type TileSet interface {
	// Build prepares the catalog. Idempotent; called during initialization.
	Build() error
	// TileIDs returns all tile IDs in a stable order.
	TileIDs() []tileset.TileID
	// Weight returns the selection weight of a tile; false for unknown IDs.
	Weight(id tileset.TileID) (int, bool)
	// Judge reports whether candidate can coexist with some tile from each
	// non-empty neighbor possibility set. Must be pure and monotone in the
	// neighbor sets; empty sets are unconstrained.
	Judge(neighbors [][]tileset.TileID, candidate tileset.TileID) bool
}

// Initializer populates per-cell state before solving. A custom Initializer
// typically calls Engine.InitializeCells first and then forces a few cells
// with Engine.PreCollapse.
type Initializer interface {
	Initialize(e *Engine) error
}

// DefaultInitializer seeds every cell with the full catalog and no forced
// collapses.
type DefaultInitializer struct{}

// Initialize populates the standard per-cell state.
func (DefaultInitializer) Initialize(e *Engine) error { return e.InitializeCells() }

// CellState is the read-only query view of one cell.
type CellState struct {
	// Status mirrors the possibility count: Collapsed ⇔ 1, Conflict ⇔ 0,
	// Uncollapsed ⇔ 2+.
	Status Status
	// Possibilities holds the tiles still admissible, in selection order.
	Possibilities []tileset.TileID
	// Entropy is the Shannon entropy of the weight distribution over
	// Possibilities; 0 for one or fewer.
	Entropy float64
}
