// Package grid models a finite set of cells connected by direction-indexed
// edges, the adjacency structure consumed by the wfc solver.
//
// What:
//
//   - System stores, per cell, an ordered list of neighbor slots. Slot k is
//     the neighbor in local direction k; a boundary slot holds NoCell.
//   - Scheme fixes the local-direction vocabulary: the out-degree D of a
//     fully-connected cell and the reverse permutation pairing each direction
//     with its opposite (for Orthogonal4: reverse(E)=W, reverse(S)=N).
//   - Builders (Orthogonal2D, Ring) assemble common topologies; FromBuilder
//     runs any custom Builder.
//
// Why:
//
//   - WFC compatibility is direction-aware: tile.Edges[k] faces the neighbor
//     at slot k, so the slot order is part of the contract, not an
//     implementation detail.
//   - Adjacency is structurally bidirectional: whenever slot k of A holds B,
//     slot reverse(k) of B holds A. Validate checks exactly that.
//
// Complexity:
//
//   - AddCell, Connect, NeighborAt: O(1).
//   - Validate: O(C×D), Memory: O(1).
//   - Builders: O(C×D) time and memory.
//
// Errors:
//
//   - ErrBadScheme: degree < 1, or Reverse is not a self-inverse permutation.
//   - ErrCellNotFound: an operation referenced a cell outside the system.
//   - ErrSelfLoop: a cell was connected to itself.
//   - ErrDegreeExceeded: more than Degree slots created for one cell.
//   - ErrAsymmetricEdge: Validate found a slot without its reverse slot.
//   - ErrEmptyDimensions: a builder was given a zero-sized topology.
package grid
