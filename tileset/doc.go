// Package tileset owns the tile catalog of a WFC run and answers its
// compatibility question.
//
// What:
//
//   - Tile[E] couples a selection weight with one edge label of type E per
//     local direction of a grid.Scheme.
//   - Set[E] stores tiles densely by TileID, runs an optional idempotent
//     build hook, and implements Judge: can this candidate coexist with at
//     least one tile from each non-empty neighbor possibility set?
//   - The default matcher is label equality across the shared edge
//     (candidate.Edges[k] == neighbor.Edges[Reverse[k]]); WithMatcher swaps
//     in any symmetric or asymmetric predicate.
//   - Pipes returns the classic eight-tile pipe catalog used throughout the
//     examples and tests.
//
// Why:
//
//   - The solver never inspects edge labels; it only needs Judge to be
//     deterministic and monotone (shrinking a neighbor set never admits new
//     candidates). Keeping labels generic lets catalogs use strings, ints,
//     or richer socket types without touching the solver.
//   - An empty neighbor set means "unconstrained in that direction", the
//     same convention boundary slots use.
//
// Complexity:
//
//   - AddTile: O(1) amortized. Judge: O(D×P) for P tiles in the largest
//     neighbor set.
//
// Errors:
//
//   - ErrBadWeight: tile weight is negative.
//   - ErrEdgeCount: edge label count differs from the scheme degree.
//   - ErrTileNotFound: a TileID outside the catalog.
package tileset
