// Package wfcgrid is a Wave Function Collapse engine for arbitrary
// graph-shaped grids.
//
// 🚀 What is wfcgrid?
//
//	A small, deterministic constraint solver that assigns exactly one tile
//	to every cell of a grid so that every adjacency respects the tile
//	compatibility rules:
//
//	  • grid/    — direction-indexed adjacency model & builders
//	  • tileset/ — tile catalogs with weights and per-direction edge labels
//	  • wfc/     — the solver: entropy-driven collapse, propagation,
//	               layered conflict repair
//	  • catalog/ — YAML tile-catalog loader with optional expression rules
//
// ✨ Why choose wfcgrid?
//
//   - Grid-agnostic     — rectangles, rings, hexes: anything with a stable
//     neighbor order works
//   - Reproducible      — one engine seed fixes every cell's eventual choice
//   - Repairing, not
//     rewinding         — conflicts are healed by a bounded local search over
//     concentric layers, never by a global undo
//   - Pure library      — no network, no files, no CLI
//
// Quick ASCII example:
//
//	    ┌───┬───┐
//	    │ A │ B │      a 2×2 orthogonal grid: four cells, each listing its
//	    ├───┼───┤      neighbors in the fixed local order E, S, W, N; the
//	    │ C │ D │      solver fills every cell with one compatible tile.
//	    └───┴───┘
//
// See the package docs and example tests of grid, tileset, wfc and catalog
// for full examples and the compatibility model.
//
//	go get github.com/katalvlaran/wfcgrid
package wfcgrid
