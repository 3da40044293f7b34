// Package tileset defines tile types and sentinel errors for the tileset
// subpackage of github.com/katalvlaran/wfcgrid.
package tileset

import (
	"errors"
)

// Sentinel errors for tileset operations.
var (
	// ErrBadWeight indicates a negative tile weight.
	ErrBadWeight = errors.New("tileset: tile weight must not be negative")
	// ErrEdgeCount indicates an edge label count differing from the scheme degree.
	ErrEdgeCount = errors.New("tileset: edge label count must equal scheme degree")
	// ErrTileNotFound indicates an operation referenced a non-existent tile.
	ErrTileNotFound = errors.New("tileset: tile not found")
)

// TileID is a dense non-negative index into one Set's catalog.
type TileID int

// Tile is one catalog entry: a selection weight and one edge label per local
// direction. Edges[k] is the label facing the neighbor at slot k of the
// grid's direction scheme.
type Tile[E comparable] struct {
	ID     TileID
	Weight int
	Edges  []E
}

// Matcher decides whether label a, facing direction k, fits label b on the
// opposite side of the shared edge. The default matcher is equality.
type Matcher[E comparable] func(a, b E) bool
