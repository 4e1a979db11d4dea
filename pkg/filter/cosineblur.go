/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package filter

/****************************************************************************************************************/

import (
	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/source"
	"github.com/stellarforge/planetcast/pkg/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

/****************************************************************************************************************/

type cosineBlur struct {
	inner                      source.Source
	size                       int
	unmaskedScale, maskedScale float64
}

// NewCosineBlur wraps a cube-map-like environment source with a cosine-
// weighted hemispheric blur: each requested output direction integrates
// size×size samples over each of the six cube faces, weighted by
// max(0, dot(sample, out)) and by the sample's own alpha channel as a mask
// between unmaskedScale and maskedScale. It is intended for deriving small
// (e.g. 16-32px) diffuse irradiance maps from a larger environment map, as
// the cost is O(size^2) per sampled output direction.
func NewCosineBlur(inner source.Source, size int, unmaskedScale, maskedScale float64) source.Source {
	return cosineBlur{inner: inner, size: size, unmaskedScale: unmaskedScale, maskedScale: maskedScale}
}

/****************************************************************************************************************/

var blurFaceAxes = [6][3]r3.Vec{
	{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
	{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
}

/****************************************************************************************************************/

func (f cosineBlur) Sample(coord vector.Coordinate, opts renderopts.Options) pixmap.Color {
	outV := coord.AsVector()
	scaleOffset := f.maskedScale - f.unmaskedScale

	var accum pixmap.Color
	var weightAccum float64

	incr := 2.0 / float64(f.size)

	for _, axes := range blurFaceAxes {
		xv, yv, zv := axes[0], axes[1], axes[2]

		fy := -1.0
		for y := 0; y < f.size; y++ {
			fx := -1.0
			for x := 0; x < f.size; x++ {
				v := r3.Unit(r3.Add(r3.Scale(fx, xv), r3.Add(r3.Scale(fy, yv), zv)))

				weight := r3.Dot(v, outV)
				if weight <= 0 {
					fx += incr
					continue
				}

				color := f.inner.Sample(vector.FromVector(v), opts)
				if !color.Finite() {
					fx += incr
					continue
				}

				localWeight := f.unmaskedScale + float64(color.A)*scaleOffset
				accum = accum.Add(color.Scale(weight * localWeight))
				weightAccum += weight

				fx += incr
			}
			fy += incr
		}
	}

	if weightAccum == 0 {
		return pixmap.Clear
	}

	out := accum.Scale(1 / weightAccum)
	out.A = 1
	return out
}

/****************************************************************************************************************/
