/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package sink

/****************************************************************************************************************/

import (
	"context"
	"math"
	"testing"

	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/source"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

// TestNewRejectsUnknownKind checks the error path for an unrecognized kind.
func TestNewRejectsUnknownKind(t *testing.T) {
	if _, err := New(Kind("bogus")); err == nil {
		t.Fatal("New(bogus) returned nil error")
	}
}

/****************************************************************************************************************/

// TestValidateSizeRejectsNonPositiveAndOversized checks both halves of the
// size contract every sink's Render delegates to.
func TestValidateSizeRejectsNonPositiveAndOversized(t *testing.T) {
	if err := validateSize(0, 10); err == nil {
		t.Error("validateSize(0, 10) returned nil error")
	}
	if err := validateSize(10, 0); err == nil {
		t.Error("validateSize(10, 0) returned nil error")
	}
	if err := validateSize(MaxDimension+1, 10); err == nil {
		t.Error("validateSize(MaxDimension+1, 10) returned nil error")
	}
	if err := validateSize(10, 10); err != nil {
		t.Errorf("validateSize(10, 10) = %v; want nil", err)
	}
}

/****************************************************************************************************************/

// TestLatLongSinkDimensions checks that a lat-long render allocates a 2:1
// pixmap.
func TestLatLongSinkDimensions(t *testing.T) {
	s, err := New(KindLatLong)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	src, err := source.New(source.KindGrid, nil, source.GridOptions{})
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}

	out, err := s.Render(context.Background(), 8, renderopts.Options{Fast: true}, src, func(int, int) bool { return true })
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.Width() != 16 || out.Height() != 8 {
		t.Errorf("dimensions = %dx%d; want 16x8", out.Width(), out.Height())
	}
}

/****************************************************************************************************************/

// TestCubeSinkDimensions checks the vertically-stacked and cross layouts'
// output dimensions.
func TestCubeSinkDimensions(t *testing.T) {
	src, err := source.New(source.KindGrid, nil, source.GridOptions{})
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}

	vertical, _ := New(KindCubeVertical)
	out, err := vertical.Render(context.Background(), 4, renderopts.Options{Fast: true}, src, func(int, int) bool { return true })
	if err != nil {
		t.Fatalf("Render (vertical): %v", err)
	}
	if out.Width() != 4 || out.Height() != 24 {
		t.Errorf("vertical dimensions = %dx%d; want 4x24", out.Width(), out.Height())
	}

	cross, _ := New(KindCubeCross)
	out, err = cross.Render(context.Background(), 4, renderopts.Options{Fast: true}, src, func(int, int) bool { return true })
	if err != nil {
		t.Fatalf("Render (cross): %v", err)
	}
	if out.Width() != 16 || out.Height() != 12 {
		t.Errorf("cross dimensions = %dx%d; want 16x12", out.Width(), out.Height())
	}
}

/****************************************************************************************************************/

type constantSource struct{ c pixmap.Color }

func (s constantSource) Sample(vector.Coordinate, renderopts.Options) pixmap.Color { return s.c }

/****************************************************************************************************************/

// TestRenderersProduceUniformColorFromUniformSource checks that every sink,
// given a source returning the same opaque color everywhere, reproduces
// that color (within supersampling's floating-point tolerance) across the
// entire output, confirming the weighted average of identical samples is
// itself.
func TestRenderersProduceUniformColorFromUniformSource(t *testing.T) {
	src := constantSource{c: pixmap.Color{R: 0.6, G: 0.2, B: 0.1, A: 1}}

	for _, kind := range []Kind{KindLatLong, KindMercator, KindGallPeters, KindCubeVertical, KindCubeCross} {
		s, err := New(kind)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}

		out, err := s.Render(context.Background(), 4, renderopts.Options{Fast: true}, src, func(int, int) bool { return true })
		if err != nil {
			t.Fatalf("Render(%q): %v", kind, err)
		}

		for y := 0; y < out.Height(); y++ {
			for x := 0; x < out.Width(); x++ {
				c := out.At(x, y)
				if math.Abs(float64(c.R)-0.6) > 1e-4 || math.Abs(float64(c.G)-0.2) > 1e-4 || math.Abs(float64(c.B)-0.1) > 1e-4 {
					t.Fatalf("%q pixel (%d,%d) = %+v; want {0.6 0.2 0.1 _}", kind, x, y, c)
				}
			}
		}
	}
}

/****************************************************************************************************************/

// TestRenderCancellationReturnsNilPixmapAndNilError checks the shared
// cancellation contract every sink inherits from scheduler.Schedule.
func TestRenderCancellationReturnsNilPixmapAndNilError(t *testing.T) {
	s, err := New(KindLatLong)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src, err := source.New(source.KindGrid, nil, source.GridOptions{})
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}

	out, err := s.Render(context.Background(), 32, renderopts.Options{}, src, func(int, int) bool { return false })
	if err != nil {
		t.Fatalf("Render returned error %v; want nil", err)
	}
	if out != nil {
		t.Fatal("Render returned non-nil pixmap on cancellation")
	}
}

/****************************************************************************************************************/

// TestRenderRejectsOversizedOutput checks that the MaxDimension ceiling is
// enforced before any pixmap is allocated.
func TestRenderRejectsOversizedOutput(t *testing.T) {
	s, err := New(KindLatLong)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src, err := source.New(source.KindGrid, nil, source.GridOptions{})
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}

	_, err = s.Render(context.Background(), MaxDimension, renderopts.Options{}, src, func(int, int) bool { return true })
	if err == nil {
		t.Fatal("Render returned nil error for an oversized output")
	}
}

/****************************************************************************************************************/
