/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package pixmap implements the floating-point RGBA raster shared between
// every source, filter, and sink in the reprojection pipeline.
package pixmap

/****************************************************************************************************************/

import (
	"fmt"
	"math"
)

/****************************************************************************************************************/

// Color is a linear-light RGBA color. Values are unrestricted: intermediate
// computation may legitimately exceed [0,1] or carry +Inf; only NaN is
// treated specially, and only by filters that choose to (see Finite).
type Color struct {
	R, G, B, A float32
}

/****************************************************************************************************************/

// Finite reports whether every channel of c is neither NaN nor infinite.
func (c Color) Finite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

/****************************************************************************************************************/

// Scale multiplies every channel of c by f.
func (c Color) Scale(f float64) Color {
	s := float32(f)
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

/****************************************************************************************************************/

// Add returns the component-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

/****************************************************************************************************************/

// White, Black and Clear are the constants the source decoders paint their
// backgrounds and grid lines with.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Clear = Color{0, 0, 0, 0}
)

/****************************************************************************************************************/

// Pixmap is a width×height grid of Color values with a row stride that may
// exceed width, so that View can carve out a sub-rectangle of a larger
// buffer without copying. Because the backing slice is shared, writes
// through a view are visible through the parent and vice versa: Go's
// garbage collector retires the original tool's manual reference counting,
// since the backing array is freed only once every Pixmap value (parent
// and views alike) referencing it has become unreachable.
type Pixmap struct {
	pix           []Color
	width, height int
	stride        int
}

/****************************************************************************************************************/

// New allocates a width×height pixmap cleared to Clear.
func New(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixmap: invalid dimensions %dx%d", width, height)
	}

	// Guard against an int overflow computing the buffer length.
	area := int64(width) * int64(height)
	if area > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("pixmap: dimensions %dx%d overflow", width, height)
	}

	return &Pixmap{
		pix:    make([]Color, area),
		width:  width,
		height: height,
		stride: width,
	}, nil
}

/****************************************************************************************************************/

// Width returns the pixmap's width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap's height in pixels.
func (p *Pixmap) Height() int { return p.height }

/****************************************************************************************************************/

// At returns the color at (x, y). It panics on out-of-range coordinates;
// callers in this module always bound their loops to Width()/Height() first.
func (p *Pixmap) At(x, y int) Color {
	return p.pix[y*p.stride+x]
}

/****************************************************************************************************************/

// Set writes the color at (x, y).
func (p *Pixmap) Set(x, y int, c Color) {
	p.pix[y*p.stride+x] = c
}

/****************************************************************************************************************/

// View returns a Pixmap sharing storage with p, representing the
// sub-rectangle [x, x+w) × [y, y+h). The caller must ensure the rectangle
// lies within p's bounds.
func (p *Pixmap) View(x, y, w, h int) *Pixmap {
	return &Pixmap{
		pix:    p.pix[y*p.stride+x:],
		width:  w,
		height: h,
		stride: p.stride,
	}
}

/****************************************************************************************************************/

// Clone returns a deep copy of p, with no storage shared with the original.
func (p *Pixmap) Clone() *Pixmap {
	out := &Pixmap{
		pix:    make([]Color, p.width*p.height),
		width:  p.width,
		height: p.height,
		stride: p.width,
	}
	for y := 0; y < p.height; y++ {
		copy(out.pix[y*out.stride:y*out.stride+p.width], p.pix[y*p.stride:y*p.stride+p.width])
	}
	return out
}

/****************************************************************************************************************/
