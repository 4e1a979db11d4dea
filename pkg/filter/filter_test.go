/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package filter

/****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/stellarforge/planetcast/pkg/matrix3"
	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

type recordingSource struct {
	got vector.Vector
	out pixmap.Color
}

func (r *recordingSource) Sample(coord vector.Coordinate, _ renderopts.Options) pixmap.Color {
	r.got = coord.AsVector()
	return r.out
}

/****************************************************************************************************************/

// TestMatrixTransformRotatesBeforeSampling checks that the wrapped source
// receives the rotated direction, not the original.
func TestMatrixTransformRotatesBeforeSampling(t *testing.T) {
	inner := &recordingSource{out: pixmap.White}
	f := NewMatrixTransform(inner, matrix3.RotateY(math.Pi/2))

	f.Sample(vector.FromVector(vector.Vector{X: 0, Y: 0, Z: 1}), renderopts.Options{})

	want := vector.Vector{X: 1, Y: 0, Z: 0}
	if math.Abs(inner.got.X-want.X) > 1e-9 || math.Abs(inner.got.Y-want.Y) > 1e-9 || math.Abs(inner.got.Z-want.Z) > 1e-9 {
		t.Errorf("inner saw %v; want %v", inner.got, want)
	}
}

/****************************************************************************************************************/

// TestMatrixTransformIdentityIsPassThrough checks that wrapping with the
// identity matrix leaves the sampled direction unchanged.
func TestMatrixTransformIdentityIsPassThrough(t *testing.T) {
	inner := &recordingSource{out: pixmap.White}
	f := NewMatrixTransform(inner, matrix3.Identity())

	v := vector.Vector{X: 0.3, Y: 0.5, Z: 0.7}
	f.Sample(vector.FromVector(v), renderopts.Options{})

	if inner.got != v {
		t.Errorf("inner saw %v; want %v", inner.got, v)
	}
}

/****************************************************************************************************************/

type constantSource struct {
	c pixmap.Color
}

func (s constantSource) Sample(vector.Coordinate, renderopts.Options) pixmap.Color { return s.c }

/****************************************************************************************************************/

// TestCosineBlurOfUniformEnvironmentReturnsThatColor checks that blurring a
// source that returns the same opaque color everywhere reproduces that
// color, since the weighted average of identical samples is itself.
func TestCosineBlurOfUniformEnvironmentReturnsThatColor(t *testing.T) {
	inner := constantSource{c: pixmap.Color{R: 0.4, G: 0.4, B: 0.4, A: 1}}
	f := NewCosineBlur(inner, 4, 1, 1)

	got := f.Sample(vector.FromVector(vector.Vector{X: 0, Y: 0, Z: 1}), renderopts.Options{})

	if math.Abs(float64(got.R)-0.4) > 1e-6 || math.Abs(float64(got.G)-0.4) > 1e-6 || math.Abs(float64(got.B)-0.4) > 1e-6 {
		t.Errorf("blurred uniform source = %+v; want RGB 0.4", got)
	}
	if got.A != 1 {
		t.Errorf("blurred alpha = %v; want 1", got.A)
	}
}

/****************************************************************************************************************/

type nonFiniteSource struct{}

func (nonFiniteSource) Sample(vector.Coordinate, renderopts.Options) pixmap.Color {
	return pixmap.Color{R: float32(math.NaN())}
}

/****************************************************************************************************************/

// TestCosineBlurSkipsNonFiniteSamples checks that every sample being
// non-finite falls back to Clear rather than propagating NaN.
func TestCosineBlurSkipsNonFiniteSamples(t *testing.T) {
	f := NewCosineBlur(nonFiniteSource{}, 4, 1, 1)
	got := f.Sample(vector.FromVector(vector.Vector{X: 0, Y: 0, Z: 1}), renderopts.Options{})
	if got != pixmap.Clear {
		t.Errorf("blur of all-NaN source = %+v; want Clear", got)
	}
}

/****************************************************************************************************************/
