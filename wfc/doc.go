// Package wfc solves Wave Function Collapse over any graph-shaped grid:
// it assigns exactly one tile to every cell so that each adjacency satisfies
// the tile catalog's compatibility rules.
//
// What:
//
//   - Engine drives the run over two injected capabilities: a Topology
//     (direction-indexed adjacency, see grid) and a TileSet (weights plus
//     the Judge predicate, see tileset).
//   - Collapse loop: pick the minimum-entropy uncollapsed cell, sample one
//     tile by weight from the cell's fixed per-cell random value, propagate
//     the restriction through a worklist wave.
//   - Conflict repair: when every cell is decided but some ran out of tiles,
//     the engine reopens the conflict region in concentric layers and runs a
//     bounded local backtracking search over it — no global timeline unwind.
//
// Why:
//
//   - Per-cell randomness (a value derived once from each cell's seed and
//     never refreshed) makes every run a pure function of the engine seed:
//     identical inputs replay identical state transitions, step by step.
//   - Layered repair keeps failures local. A contradiction in one corner
//     reopens a few nearby cells instead of throwing away the whole grid.
//
// Complexity:
//
//   - Step (collapse): O(C) selection + O(C×T) propagation worst case.
//   - Step (repair): exponential in region candidates, capped by
//     MaxLayerDepth and layer sizes; snapshots cost O(C×P) per search frame.
//
// Errors: see types.go — structural errors (ErrCellNotFound,
// ErrTileNotFound, ErrCellAlreadyCollapsed, ErrInvalidTileChoice,
// ErrInconsistentState) surface immediately; ErrUnresolvableConflicts is the
// one terminal solver outcome; ErrInitializationFailed wraps setup failures.
// Propagation itself never fails — it records conflicts in-state and defers
// them to repair.
package wfc
