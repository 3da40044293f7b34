package tileset

import (
	"fmt"

	"github.com/katalvlaran/wfcgrid/grid"
)

// Option configures a Set at construction time.
type Option[E comparable] func(*Set[E])

// WithMatcher replaces the default equality matcher.
func WithMatcher[E comparable](m Matcher[E]) Option[E] {
	return func(s *Set[E]) {
		if m != nil {
			s.match = m
		}
	}
}

// WithBuildHook registers fn to run on the first Build call. Use it to
// populate a Set lazily; subsequent Build calls are no-ops.
func WithBuildHook[E comparable](fn func(*Set[E]) error) Option[E] {
	return func(s *Set[E]) {
		if fn != nil {
			s.buildFn = fn
		}
	}
}

// Set is a tile catalog over edge labels of type E, bound to one direction
// scheme. The zero Set is not usable; construct with NewSet.
type Set[E comparable] struct {
	scheme  grid.Scheme
	tiles   []Tile[E]
	match   Matcher[E]
	buildFn func(*Set[E]) error
	built   bool
}

// NewSet returns an empty catalog bound to scheme.
// Returns grid.ErrBadScheme if the scheme is malformed.
func NewSet[E comparable](scheme grid.Scheme, opts ...Option[E]) (*Set[E], error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	s := &Set[E]{
		scheme: scheme,
		match:  func(a, b E) bool { return a == b },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Scheme returns the direction scheme the catalog is bound to.
func (s *Set[E]) Scheme() grid.Scheme { return s.scheme }

// AddTile appends a tile with the given weight and per-direction edge labels
// and returns its ID. Weight zero is legal (for an all-zero possibility set
// the solver uses uniform entropy and samples the first possibility);
// negative weights are rejected.
// Returns ErrBadWeight or ErrEdgeCount.
func (s *Set[E]) AddTile(weight int, edges ...E) (TileID, error) {
	if weight < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if len(edges) != s.scheme.Degree {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrEdgeCount, len(edges), s.scheme.Degree)
	}
	id := TileID(len(s.tiles))
	own := make([]E, len(edges))
	copy(own, edges)
	s.tiles = append(s.tiles, Tile[E]{ID: id, Weight: weight, Edges: own})

	return id, nil
}

// Build runs the registered build hook once. Without a hook it is a no-op.
// Idempotent: the hook never runs twice, even after an error.
func (s *Set[E]) Build() error {
	if s.built || s.buildFn == nil {
		s.built = true

		return nil
	}
	s.built = true

	return s.buildFn(s)
}

// Count returns the number of tiles in the catalog.
func (s *Set[E]) Count() int { return len(s.tiles) }

// TileIDs returns all tile IDs in catalog order. The slice is freshly
// allocated on every call.
func (s *Set[E]) TileIDs() []TileID {
	ids := make([]TileID, len(s.tiles))
	for i := range ids {
		ids[i] = TileID(i)
	}

	return ids
}

// Tile returns the tile with the given ID. The second result is false for an
// unknown ID. The returned Edges slice is owned by the Set.
func (s *Set[E]) Tile(id TileID) (Tile[E], bool) {
	if id < 0 || int(id) >= len(s.tiles) {
		return Tile[E]{}, false
	}

	return s.tiles[id], true
}

// Weight returns the weight of the tile with the given ID.
// The second result is false for an unknown ID.
func (s *Set[E]) Weight(id TileID) (int, bool) {
	if id < 0 || int(id) >= len(s.tiles) {
		return 0, false
	}

	return s.tiles[id].Weight, true
}

// Judge reports whether candidate can coexist with some tile from each
// non-empty neighbor possibility set. neighbors is indexed by local
// direction; a nil or empty set, or a missing trailing entry, is
// unconstrained. The check along direction k matches candidate.Edges[k]
// against neighbor.Edges[Reverse[k]] using the set's matcher.
//
// Judge is pure and monotone: shrinking a neighbor set never admits a
// previously rejected candidate.
// Complexity: O(D×P).
func (s *Set[E]) Judge(neighbors [][]TileID, candidate TileID) bool {
	cand, ok := s.Tile(candidate)
	if !ok {
		return false
	}
	for k, set := range neighbors {
		if k >= s.scheme.Degree || len(set) == 0 {
			continue
		}
		rk := s.scheme.Reverse[k]
		matched := false
		for _, nid := range set {
			nt, ok := s.Tile(nid)
			if !ok {
				continue
			}
			if s.match(cand.Edges[k], nt.Edges[rk]) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
