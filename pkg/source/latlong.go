/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package source

/****************************************************************************************************************/

import (
	"math"

	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

// latlongSource treats its input pixmap as an equirectangular projection:
// longitude runs across the width, latitude down the height.
type latlongSource struct {
	pix *pixmap.Pixmap
}

// NewLatLong builds a source that samples pix as an equirectangular
// (lat/long) map.
func NewLatLong(pix *pixmap.Pixmap) Source {
	return latlongSource{pix: pix}
}

/****************************************************************************************************************/

func (s latlongSource) Sample(coord vector.Coordinate, opts renderopts.Options) pixmap.Color {
	ll := coord.AsLatLongRad()
	w, h := s.pix.Width(), s.pix.Height()

	lonPx := (ll.Lon + math.Pi) * float64(w) / (2 * math.Pi)
	latPx := (math.Pi/2 - ll.Lat) * float64(h) / math.Pi

	if opts.Fast {
		x := wrapInt(int(math.Floor(lonPx)), w)
		y := clampInt(int(math.Floor(latPx)), 0, h-1)
		return s.pix.At(x, y)
	}

	return bilinearWrapClamp(s.pix, lonPx-0.5, latPx-0.5)
}

/****************************************************************************************************************/

func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

/****************************************************************************************************************/

// bilinearWrapClamp samples pix at floating-point pixel coordinates (fx,
// fy), wrapping horizontally (longitude repeats) and clamping vertically
// (latitude does not wrap over the poles). This keeps the later of two
// wrapping conventions present in the original tool's source, resolving
// their inconsistency in favor of: longitude = repeat, latitude = clamp.
func bilinearWrapClamp(pix *pixmap.Pixmap, fx, fy float64) pixmap.Color {
	w, h := pix.Width(), pix.Height()

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x0w := wrapInt(x0, w)
	x1w := wrapInt(x0+1, w)
	y0c := clampInt(y0, 0, h-1)
	y1c := clampInt(y0+1, 0, h-1)

	c00 := pix.At(x0w, y0c)
	c10 := pix.At(x1w, y0c)
	c01 := pix.At(x0w, y1c)
	c11 := pix.At(x1w, y1c)

	top := lerpColor(c00, c10, tx)
	bottom := lerpColor(c01, c11, tx)
	return lerpColor(top, bottom, ty)
}

/****************************************************************************************************************/

// bilinearClamp samples pix at floating-point pixel coordinates (fx, fy),
// clamping in both axes. Used by the cube-map readers, which sample
// strictly within a single face and must not bleed across the seam: the
// original source's disabled diagnostic cross-face handler is not carried
// over.
func bilinearClamp(pix *pixmap.Pixmap, fx, fy float64) pixmap.Color {
	w, h := pix.Width(), pix.Height()

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x0c := clampInt(x0, 0, w-1)
	x1c := clampInt(x0+1, 0, w-1)
	y0c := clampInt(y0, 0, h-1)
	y1c := clampInt(y0+1, 0, h-1)

	c00 := pix.At(x0c, y0c)
	c10 := pix.At(x1c, y0c)
	c01 := pix.At(x0c, y1c)
	c11 := pix.At(x1c, y1c)

	top := lerpColor(c00, c10, tx)
	bottom := lerpColor(c01, c11, tx)
	return lerpColor(top, bottom, ty)
}

/****************************************************************************************************************/

func lerpColor(a, b pixmap.Color, t float64) pixmap.Color {
	return a.Scale(1 - t).Add(b.Scale(t))
}

/****************************************************************************************************************/
