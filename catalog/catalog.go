package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
)

// Sentinel errors for catalog loading.
var (
	// ErrBadDocument indicates the YAML document could not be decoded.
	ErrBadDocument = errors.New("catalog: malformed document")
	// ErrNoTiles indicates a document with an empty tile list.
	ErrNoTiles = errors.New("catalog: document declares no tiles")
	// ErrDuplicateTile indicates two tiles sharing one name.
	ErrDuplicateTile = errors.New("catalog: duplicate tile name")
	// ErrBadMatchExpr indicates a match expression that does not compile to a boolean.
	ErrBadMatchExpr = errors.New("catalog: invalid match expression")
)

// document mirrors the YAML schema.
type document struct {
	Scheme schemeDef `yaml:"scheme"`
	Match  string    `yaml:"match"`
	Tiles  []tileDef `yaml:"tiles"`
}

type schemeDef struct {
	Degree  int   `yaml:"degree"`
	Reverse []int `yaml:"reverse"`
}

type tileDef struct {
	Name   string   `yaml:"name"`
	Weight int      `yaml:"weight"`
	Edges  []string `yaml:"edges"`
}

// Catalog is a loaded tile catalog: the solver-ready set plus the document's
// name index.
type Catalog struct {
	// Set is ready to hand to wfc.New.
	Set *tileset.Set[string]
	// Names maps each document tile name to its TileID, in catalog order.
	Names map[string]tileset.TileID
}

// Load decodes one YAML document from r. See Parse.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return Parse(data)
}

// Parse decodes one YAML document into a Catalog. The scheme is validated,
// every tile must carry exactly Degree edge labels, and an optional match
// expression replaces the default edge-equality matcher.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Tiles) == 0 {
		return nil, ErrNoTiles
	}
	scheme := grid.Scheme{Degree: doc.Scheme.Degree, Reverse: doc.Scheme.Reverse}
	var opts []tileset.Option[string]
	if doc.Match != "" {
		m, err := compileMatcher(doc.Match)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tileset.WithMatcher(m))
	}
	set, err := tileset.NewSet[string](scheme, opts...)
	if err != nil {
		return nil, err
	}
	names := make(map[string]tileset.TileID, len(doc.Tiles))
	for _, td := range doc.Tiles {
		if _, dup := names[td.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTile, td.Name)
		}
		id, err := set.AddTile(td.Weight, td.Edges...)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", td.Name, err)
		}
		names[td.Name] = id
	}

	return &Catalog{Set: set, Names: names}, nil
}

// matchEnv is the expression environment: the two facing edge labels.
type matchEnv struct {
	Candidate string `expr:"candidate"`
	Neighbor  string `expr:"neighbor"`
}

// compileMatcher compiles src once and wraps it as a tileset.Matcher.
// A runtime evaluation error counts as "no match".
func compileMatcher(src string) (tileset.Matcher[string], error) {
	program, err := expr.Compile(src, expr.Env(matchEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMatchExpr, err)
	}

	return func(a, b string) bool {
		return runMatch(program, matchEnv{Candidate: a, Neighbor: b})
	}, nil
}

// runMatch evaluates one compiled match program.
func runMatch(program *vm.Program, env matchEnv) bool {
	out, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	ok, _ := out.(bool)

	return ok
}
