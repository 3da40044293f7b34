// Package wfc implements the Wave Function Collapse solver: an
// entropy-driven collapse loop with bidirectional constraint propagation and
// a layered, locally backtracking conflict repair.
//
// The engine owns all per-cell state exclusively and is single-threaded:
// Step is synchronous and bounded, and given identical inputs (topology,
// tile set, engine seed) every Step produces identical state transitions.
package wfc

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// cellState is the mutable solver state of one cell. seed and rnd are
// assigned at initialization and never change afterwards; everything else is
// derived from the possibility set.
type cellState struct {
	status  Status
	poss    []tileset.TileID
	entropy float64
	seed    uint64
	rnd     uint32
}

// Engine drives a WFC run over an injected topology and tile set. Construct
// with New, seed per-cell state with Initialize or InitializeWith, then call
// Step or Run. The engine is an owned value: it holds no global state and no
// locks.
type Engine struct {
	topo  Topology
	tiles TileSet
	opts  Options

	runID string
	log   zerolog.Logger

	order   []grid.CellID
	cells   map[grid.CellID]*cellState
	catalog []tileset.TileID
	weights map[tileset.TileID]int

	// completed counts cells that left Uncollapsed (Collapsed or Conflict);
	// completed == len(order) is the "all collapsed" condition even while
	// conflicts remain.
	completed   int
	initialized bool

	rng *rand.Rand
}

// New builds an engine over the given topology and tile set.
// Returns ErrGridNil, ErrTileSetNil, ErrOptionViolation, or
// ErrInitializationFailed when no OS entropy is available for the default
// seed.
func New(topo Topology, tiles TileSet, opts ...Option) (*Engine, error) {
	if topo == nil {
		return nil, ErrGridNil
	}
	if tiles == nil {
		return nil, ErrTileSetNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.seedSet {
		var err error
		if o.Seed, err = osSeed(); err != nil {
			return nil, err
		}
	}
	e := &Engine{
		topo:  topo,
		tiles: tiles,
		opts:  o,
		runID: uuid.NewString(),
		order: topo.Cells(),
		cells: make(map[grid.CellID]*cellState),
		rng:   rand.New(rand.NewSource(int64(o.Seed))),
	}
	e.log = o.Logger.With().Str("run_id", e.runID).Logger()

	return e, nil
}

// osSeed draws a 64-bit seed from the operating system.
func osSeed() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: reading OS entropy: %v", ErrInitializationFailed, err)
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// RunID returns the engine's unique run identifier, stamped on every logged
// event.
func (e *Engine) RunID() string { return e.runID }

// Seed returns the engine seed in effect, whether configured or OS-drawn.
func (e *Engine) Seed() uint64 { return e.opts.Seed }

// Initialize seeds per-cell state with the default initializer.
func (e *Engine) Initialize() error {
	return e.InitializeWith(DefaultInitializer{})
}

// InitializeWith runs init to seed per-cell state. Any error is surfaced as
// (or wrapped into) ErrInitializationFailed. Initializing twice is an
// ErrInconsistentState.
func (e *Engine) InitializeWith(init Initializer) error {
	if e.initialized {
		return fmt.Errorf("%w: already initialized", ErrInconsistentState)
	}
	if init == nil {
		init = DefaultInitializer{}
	}
	if err := init.Initialize(e); err != nil {
		e.initialized = false
		if errors.Is(err, ErrInitializationFailed) {
			return err
		}

		return fmt.Errorf("%w: %v", ErrInitializationFailed, err)
	}
	if !e.initialized {
		return fmt.Errorf("%w: initializer did not populate cell state", ErrInitializationFailed)
	}

	return nil
}

// InitializeCells performs the standard population step: builds the tile
// set, then gives every cell a fresh seed, a derived random value, the full
// catalog as possibilities, and an initial entropy. Custom Initializers call
// this before forcing cells with PreCollapse.
// Returns ErrInitializationFailed if the built catalog is empty.
// Complexity: O(C×T).
func (e *Engine) InitializeCells() error {
	if err := e.tiles.Build(); err != nil {
		return fmt.Errorf("%w: building tile set: %v", ErrInitializationFailed, err)
	}
	e.catalog = e.tiles.TileIDs()
	if len(e.catalog) == 0 {
		return fmt.Errorf("%w: tile set is empty", ErrInitializationFailed)
	}
	e.weights = make(map[tileset.TileID]int, len(e.catalog))
	for _, id := range e.catalog {
		w, ok := e.tiles.Weight(id)
		if !ok {
			return fmt.Errorf("%w: tile %d has no weight", ErrInitializationFailed, id)
		}
		e.weights[id] = w
	}
	e.completed = 0
	for _, c := range e.order {
		seed := e.rng.Uint64()
		st := &cellState{
			poss: append([]tileset.TileID(nil), e.catalog...),
			seed: seed,
			rnd:  derivedRand(seed),
		}
		st.entropy = e.entropyOf(st.poss)
		// A one-tile catalog collapses every cell immediately; status is a
		// function of the possibility count.
		if len(st.poss) == 1 {
			st.status = Collapsed
			st.entropy = 0
			e.completed++
		}
		e.cells[c] = st
	}
	e.initialized = true
	e.log.Debug().Int("cells", len(e.order)).Int("tiles", len(e.catalog)).
		Uint64("seed", e.opts.Seed).Msg("wfc initialized")

	return nil
}

// PreCollapse forces cell c to tile t and propagates the restriction.
// Returns ErrCellNotFound, ErrTileNotFound, ErrCellAlreadyCollapsed when the
// cell is not Uncollapsed, or ErrInvalidTileChoice when t is not among the
// cell's current possibilities.
func (e *Engine) PreCollapse(c grid.CellID, t tileset.TileID) error {
	st, ok := e.cells[c]
	if !ok {
		return fmt.Errorf("%w: %d", ErrCellNotFound, c)
	}
	if _, ok = e.weights[t]; !ok {
		return fmt.Errorf("%w: %d", ErrTileNotFound, t)
	}
	if st.status != Uncollapsed {
		return fmt.Errorf("%w: %d is %s", ErrCellAlreadyCollapsed, c, st.status)
	}
	if !contains(st.poss, t) {
		return fmt.Errorf("%w: tile %d at cell %d", ErrInvalidTileChoice, t, c)
	}
	e.applyCollapse(c, st, t)
	e.propagate(c)

	return nil
}

// Step executes exactly one logical solver step:
//
//   - not all collapsed          → collapse one cell, propagate → StepCollapsed
//   - all collapsed, conflicts   → run repair → StepConflictsResolved or
//     StepConflictResolutionFailed
//   - all collapsed, no conflict → StepComplete
//
// Returns ErrInconsistentState before initialization; collapse errors bubble
// out unchanged.
func (e *Engine) Step() (StepResult, error) {
	if !e.initialized {
		return 0, fmt.Errorf("%w: not initialized", ErrInconsistentState)
	}
	if e.completed < len(e.order) {
		if err := e.collapseOnce(); err != nil {
			return 0, err
		}

		return StepCollapsed, nil
	}
	if len(e.conflictCells()) > 0 {
		if e.repair() {
			return StepConflictsResolved, nil
		}

		return StepConflictResolutionFailed, nil
	}

	return StepComplete, nil
}

// Run steps until completion or unresolvable conflicts.
// Returns nil on completion, ErrUnresolvableConflicts when repair gave up,
// the context error on cancellation, or any step error.
func (e *Engine) Run() error {
	for {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		res, err := e.Step()
		if err != nil {
			return err
		}
		switch res {
		case StepComplete:
			return nil
		case StepConflictResolutionFailed:
			return ErrUnresolvableConflicts
		}
	}
}

// CellState returns the query view of cell c. The possibility slice is a
// copy.
func (e *Engine) CellState(c grid.CellID) (CellState, error) {
	st, ok := e.cells[c]
	if !ok {
		return CellState{}, fmt.Errorf("%w: %d", ErrCellNotFound, c)
	}

	return CellState{
		Status:        st.status,
		Possibilities: append([]tileset.TileID(nil), st.poss...),
		Entropy:       st.entropy,
	}, nil
}

// CollapsedTile returns the tile chosen for cell c. The second result is
// false when c is untracked or not collapsed.
func (e *Engine) CollapsedTile(c grid.CellID) (tileset.TileID, bool) {
	st, ok := e.cells[c]
	if !ok || st.status != Collapsed {
		return 0, false
	}

	return st.poss[0], true
}

// Completed returns the number of cells that have left Uncollapsed.
func (e *Engine) Completed() int { return e.completed }

// Conflicts returns the cells currently in Conflict, in topology order.
func (e *Engine) Conflicts() []grid.CellID { return e.conflictCells() }

// IsComplete reports whether every cell is collapsed conflict-free.
func (e *Engine) IsComplete() bool {
	return e.initialized && e.completed == len(e.order) && len(e.conflictCells()) == 0
}

// conflictCells scans in topology order so repair layers are deterministic.
func (e *Engine) conflictCells() []grid.CellID {
	var out []grid.CellID
	for _, c := range e.order {
		if e.cells[c].status == Conflict {
			out = append(out, c)
		}
	}

	return out
}

// neighborView assembles the per-direction possibility sets around c:
// slot k holds the current possibilities of neighbors(c)[k], or nil
// (unconstrained) for a boundary or untracked slot. The inner slices alias
// live cell state and must not be modified.
func (e *Engine) neighborView(c grid.CellID) [][]tileset.TileID {
	nbs := e.topo.Neighbors(c)
	view := make([][]tileset.TileID, len(nbs))
	for k, n := range nbs {
		if n == grid.NoCell {
			continue
		}
		if st, ok := e.cells[n]; ok {
			view[k] = st.poss
		}
	}

	return view
}

// judgeAt reports whether tile t fits cell c under its current neighborhood.
func (e *Engine) judgeAt(c grid.CellID, t tileset.TileID) bool {
	return e.tiles.Judge(e.neighborView(c), t)
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
