package wfc

import (
	"math"

	"github.com/katalvlaran/wfcgrid/tileset"
)

// derivedRand maps a cell seed to its fixed per-cell random value using the
// splitmix64 finalizer. The value is drawn once at initialization and never
// refreshed, so a cell's eventual choice is a pure function of its seed and
// its final possibility set.
func derivedRand(seed uint64) uint32 {
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	return uint32(z >> 32)
}

// entropyOf computes the Shannon entropy of the weight distribution over
// poss: H = −Σ pᵢ·log₂ pᵢ with pᵢ = wᵢ/Σw. Defined as 0 for one or fewer
// possibilities; an all-zero weight set falls back to the uniform
// log₂(len(poss)).
// Complexity: O(P).
func (e *Engine) entropyOf(poss []tileset.TileID) float64 {
	if len(poss) <= 1 {
		return 0
	}
	var total int
	for _, t := range poss {
		total += e.weights[t]
	}
	if total == 0 {
		return math.Log2(float64(len(poss)))
	}
	var h float64
	for _, t := range poss {
		w := e.weights[t]
		if w == 0 {
			continue
		}
		p := float64(w) / float64(total)
		h -= p * math.Log2(p)
	}

	return h
}
