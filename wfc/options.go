package wfc

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// DefaultMaxLayerDepth bounds conflict repair to three concentric layers.
const DefaultMaxLayerDepth = 3

// Option configures engine behavior via functional arguments.
// If an Option is invalid (e.g. a non-positive layer depth), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks customizing a solver run.
type Options struct {
	// MaxLayerDepth bounds how many concentric layers conflict repair may
	// open around a conflict region. Must be ≥ 1.
	MaxLayerDepth int

	// Seed fixes the engine RNG used to derive per-cell seeds during
	// initialization. When unset, an OS-random seed is drawn.
	Seed    uint64
	seedSet bool

	// Ctx allows cancellation between steps of Run.
	Ctx context.Context

	// Logger receives debug-level solver events, stamped with the engine's
	// run id. Defaults to a no-op logger.
	Logger zerolog.Logger

	// OnCollapse is called whenever a cell settles on a tile, whether by
	// selection, propagation, forced pre-collapse, or repair.
	OnCollapse func(c grid.CellID, t tileset.TileID)

	// OnConflict is called when propagation empties a cell's possibilities.
	OnConflict func(c grid.CellID)

	// OnRepair is called once per repair attempt with the layer depth and
	// the number of cells in the reopened region.
	OnRepair func(depth, cells int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxLayerDepth = DefaultMaxLayerDepth
//   - OS-random engine seed
//   - context.Background()
//   - no-op logger and hooks.
func DefaultOptions() Options {
	return Options{
		MaxLayerDepth: DefaultMaxLayerDepth,
		Ctx:           context.Background(),
		Logger:        zerolog.Nop(),
		OnCollapse:    func(grid.CellID, tileset.TileID) {},
		OnConflict:    func(grid.CellID) {},
		OnRepair:      func(int, int) {},
	}
}

// WithMaxLayerDepth bounds conflict repair to n concentric layers.
func WithMaxLayerDepth(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxLayerDepth %d", ErrOptionViolation, n)

			return
		}
		o.MaxLayerDepth = n
	}
}

// WithRandomSeed fixes the engine seed, making the whole run reproducible.
func WithRandomSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seedSet = true
	}
}

// WithContext sets a custom context; Run stops between steps once it is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger directs solver events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnCollapse registers a callback to run on every cell collapse.
func WithOnCollapse(fn func(c grid.CellID, t tileset.TileID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCollapse = fn
		}
	}
}

// WithOnConflict registers a callback to run when a cell runs out of tiles.
func WithOnConflict(fn func(c grid.CellID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnConflict = fn
		}
	}
}

// WithOnRepair registers a callback to run on every repair attempt.
func WithOnRepair(fn func(depth, cells int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRepair = fn
		}
	}
}
