/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package sink

/****************************************************************************************************************/

import (
	"math/rand/v2"

	"github.com/stellarforge/planetcast/pkg/gauss"
	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
)

/****************************************************************************************************************/

// sampleGrid iterates a g×g grid of samples over [-halfWidth, halfWidth]²
// centered at zero, calling visit(dx, dy, weight) for every sample. In
// deterministic mode, samples sit at fixed cell centers and weights are the
// outer product of the 1D Gaussian table; in jitter mode, each sample is
// placed at a random position within its cell and weighted by a 2D
// Gaussian table lookup. This one routine realizes both the cube-face
// kernel and the non-cube (lat/long-space) kernel, which are analogous to
// one another.
func sampleGrid(opts renderopts.Options, halfWidth float64, visit func(dx, dy, weight float64)) {
	g := opts.GridSize()
	half := float64(g-1) / 2
	cellSize := 2 * halfWidth / float64(g)
	table := gauss.Build(g)

	if !opts.Jitter {
		for j := 0; j < g; j++ {
			dy := (float64(j) - half) * cellSize
			for i := 0; i < g; i++ {
				dx := (float64(i) - half) * cellSize
				visit(dx, dy, table[i]*table[j])
			}
		}
		return
	}

	for j := 0; j < g; j++ {
		cellLowY := -halfWidth + float64(j)*cellSize
		for i := 0; i < g; i++ {
			cellLowX := -halfWidth + float64(i)*cellSize

			dx := cellLowX + rand.Float64()*cellSize
			dy := cellLowY + rand.Float64()*cellSize

			ix := (dx + halfWidth) / cellSize
			iy := (dy + halfWidth) / cellSize
			weight := gauss.Lookup2D(ix, iy, half, half, half, half, table)

			visit(dx, dy, weight)
		}
	}
}

/****************************************************************************************************************/

// accumulate runs sampleGrid over halfWidth, calling sampler for each
// sample offset, skipping non-finite colors, and returning the weight-
// normalized average. It returns pixmap.Clear if every sample was non-
// finite or every weight was zero, guarding against division by zero.
func accumulate(opts renderopts.Options, halfWidth float64, sampler func(dx, dy float64) pixmap.Color) pixmap.Color {
	var accum pixmap.Color
	var totalWeight float64

	sampleGrid(opts, halfWidth, func(dx, dy, weight float64) {
		c := sampler(dx, dy)
		if !c.Finite() {
			return
		}
		accum = accum.Add(c.Scale(weight))
		totalWeight += weight
	})

	if totalWeight == 0 {
		return pixmap.Clear
	}
	return accum.Scale(1 / totalWeight)
}

/****************************************************************************************************************/
