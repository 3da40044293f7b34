// Package catalog loads tile catalogs from YAML documents.
//
// What:
//
//   - Parse/Load turn a YAML document into a tileset.Set[string] plus a
//     name→TileID index.
//   - A document names its direction scheme, its tiles (name, weight, edge
//     labels in slot order), and optionally a `match` expression replacing
//     the default edge-equality rule.
//   - The match expression is compiled once with expr-lang; it sees the
//     variables `candidate` and `neighbor` (the two facing edge labels) and
//     must yield a boolean.
//
// Why:
//
//   - Tile catalogs are data. Keeping them in YAML lets level designers
//     iterate without recompiling, and the expression hook covers socket and
//     complement schemes that plain label equality cannot express.
//
// Example document:
//
//	scheme:
//	  degree: 4
//	  reverse: [2, 3, 0, 1]
//	match: candidate == neighbor
//	tiles:
//	  - name: grass
//	    weight: 3
//	    edges: [g, g, g, g]
//	  - name: shore
//	    weight: 1
//	    edges: [g, w, g, w]
//
// Errors:
//
//   - ErrBadDocument: the YAML cannot be decoded.
//   - ErrNoTiles: the document declares no tiles.
//   - ErrDuplicateTile: two tiles share a name.
//   - ErrBadMatchExpr: the match expression does not compile to a boolean.
//   - grid.ErrBadScheme passes through unchanged; tileset errors are wrapped
//     with the offending tile's name and still match with errors.Is.
package catalog
