package wfc_test

import (
	"testing"

	"github.com/katalvlaran/wfcgrid/grid"
	"github.com/katalvlaran/wfcgrid/tileset"
	"github.com/katalvlaran/wfcgrid/wfc"
)

// BenchmarkRun_Pipes8x8 measures a full solve of the pipe catalog on an
// 8×8 grid, fresh engine per iteration.
func BenchmarkRun_Pipes8x8(b *testing.B) {
	topo, err := grid.NewOrthogonal2D(8, 8)
	if err != nil {
		b.Fatal(err)
	}
	set := tileset.Pipes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := wfc.New(topo, set, wfc.WithRandomSeed(uint64(i)))
		if err != nil {
			b.Fatal(err)
		}
		if err = e.Initialize(); err != nil {
			b.Fatal(err)
		}
		if err = e.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPropagation_Wave measures one forced collapse plus its wave on a
// 16×16 grid.
func BenchmarkPropagation_Wave(b *testing.B) {
	topo, err := grid.NewOrthogonal2D(16, 16)
	if err != nil {
		b.Fatal(err)
	}
	set := tileset.Pipes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		e, err := wfc.New(topo, set, wfc.WithRandomSeed(uint64(i)))
		if err != nil {
			b.Fatal(err)
		}
		if err = e.Initialize(); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		// Center collapse pushes the widest wave.
		if err = e.PreCollapse(grid.CellID(8*16+8), tileset.PipeCross); err != nil {
			b.Fatal(err)
		}
	}
}
