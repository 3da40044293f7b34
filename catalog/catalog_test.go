// Package catalog_test covers YAML decoding, the name index, the match
// expression hook, and the error surface.
package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfcgrid/catalog"
	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
	"github.com/katalvlaran/wfcgrid/wfc"
)

const terrainDoc = `
scheme:
  degree: 4
  reverse: [2, 3, 0, 1]
tiles:
  - name: grass
    weight: 3
    edges: [g, g, g, g]
  - name: water
    weight: 1
    edges: [w, w, w, w]
  - name: shore
    weight: 1
    edges: [g, w, g, w]
`

// TestParse_Terrain decodes the happy-path document.
func TestParse_Terrain(t *testing.T) {
	t.Parallel()

	c, err := catalog.Parse([]byte(terrainDoc))
	require.NoError(t, err)
	require.Equal(t, 3, c.Set.Count())
	require.Equal(t, grid.Orthogonal4(), c.Set.Scheme())

	require.Equal(t, tileset.TileID(0), c.Names["grass"])
	require.Equal(t, tileset.TileID(2), c.Names["shore"])

	w, ok := c.Set.Weight(c.Names["grass"])
	require.True(t, ok)
	require.Equal(t, 3, w)

	tile, ok := c.Set.Tile(c.Names["shore"])
	require.True(t, ok)
	require.Equal(t, []string{"g", "w", "g", "w"}, tile.Edges)

	// Default equality matching: grass meets grass, never water.
	east := func(n tileset.TileID) [][]tileset.TileID {
		return [][]tileset.TileID{{n}, nil, nil, nil}
	}
	require.True(t, c.Set.Judge(east(c.Names["grass"]), c.Names["grass"]))
	require.False(t, c.Set.Judge(east(c.Names["water"]), c.Names["grass"]))
}

// TestLoad_Reader goes through the io.Reader entry point.
func TestLoad_Reader(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(strings.NewReader(terrainDoc))
	require.NoError(t, err)
	require.Equal(t, 3, c.Set.Count())
}

// TestParse_MatchExpression swaps equality for a complement rule.
func TestParse_MatchExpression(t *testing.T) {
	t.Parallel()

	doc := `
scheme:
  degree: 2
  reverse: [1, 0]
match: candidate != neighbor
tiles:
  - name: black
    weight: 1
    edges: [b, b]
  - name: white
    weight: 1
    edges: [w, w]
`
	c, err := catalog.Parse([]byte(doc))
	require.NoError(t, err)

	black, white := c.Names["black"], c.Names["white"]
	require.True(t, c.Set.Judge([][]tileset.TileID{{white}, nil}, black))
	require.False(t, c.Set.Judge([][]tileset.TileID{{black}, nil}, black))
}

// TestParse_Errors walks the failure modes.
func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"BadYAML", "{unclosed", catalog.ErrBadDocument},
		{"NoTiles", "scheme:\n  degree: 2\n  reverse: [1, 0]\ntiles: []", catalog.ErrNoTiles},
		{
			"BadScheme",
			"scheme:\n  degree: 2\n  reverse: [1, 1]\ntiles:\n  - {name: a, weight: 1, edges: [x, y]}",
			grid.ErrBadScheme,
		},
		{
			"DuplicateName",
			"scheme:\n  degree: 2\n  reverse: [1, 0]\ntiles:\n  - {name: a, weight: 1, edges: [x, y]}\n  - {name: a, weight: 1, edges: [p, q]}",
			catalog.ErrDuplicateTile,
		},
		{
			"EdgeCount",
			"scheme:\n  degree: 2\n  reverse: [1, 0]\ntiles:\n  - {name: a, weight: 1, edges: [x]}",
			tileset.ErrEdgeCount,
		},
		{
			"NegativeWeight",
			"scheme:\n  degree: 2\n  reverse: [1, 0]\ntiles:\n  - {name: a, weight: -2, edges: [x, y]}",
			tileset.ErrBadWeight,
		},
		{
			"BadMatch",
			"scheme:\n  degree: 2\n  reverse: [1, 0]\nmatch: \"candidate +\"\ntiles:\n  - {name: a, weight: 1, edges: [x, y]}",
			catalog.ErrBadMatchExpr,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_SolvesWithEngine loads a catalog and hands it straight to the
// solver: the checkerboard document tiles a 4×4 grid alternately.
func TestParse_SolvesWithEngine(t *testing.T) {
	t.Parallel()

	doc := `
scheme:
  degree: 4
  reverse: [2, 3, 0, 1]
match: candidate != neighbor
tiles:
  - name: black
    weight: 1
    edges: [b, b, b, b]
  - name: white
    weight: 1
    edges: [w, w, w, w]
`
	c, err := catalog.Parse([]byte(doc))
	require.NoError(t, err)

	topo, err := grid.NewOrthogonal2D(4, 4)
	require.NoError(t, err)
	e, err := wfc.New(topo, c.Set, wfc.WithRandomSeed(2))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run())
	require.True(t, e.IsComplete())

	// Checkerboard: neighbors never share a tile.
	for _, cell := range topo.Cells() {
		mine, ok := e.CollapsedTile(cell)
		require.True(t, ok)
		for _, n := range topo.Neighbors(cell) {
			if n == grid.NoCell {
				continue
			}
			theirs, ok := e.CollapsedTile(n)
			require.True(t, ok)
			require.NotEqual(t, mine, theirs)
		}
	}
}
