/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package imageio

/****************************************************************************************************************/

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stellarforge/planetcast/pkg/pixmap"
)

/****************************************************************************************************************/

// TestSaveLoadRoundTrip8Bit verifies that Save followed by Load reproduces
// the original colors within 8-bit quantization error.
func TestSaveLoadRoundTrip8Bit(t *testing.T) {
	p, err := pixmap.New(4, 3)
	if err != nil {
		t.Fatalf("pixmap.New: %v", err)
	}
	p.Set(0, 0, pixmap.Color{R: 1, G: 0, B: 0, A: 1})
	p.Set(1, 0, pixmap.Color{R: 0, G: 1, B: 0, A: 1})
	p.Set(2, 0, pixmap.Color{R: 0, G: 0, B: 1, A: 0.5})
	p.Set(3, 0, pixmap.Color{R: 0.2, G: 0.4, B: 0.6, A: 1})

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := Save(p, path, BitDepth8); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Width() != p.Width() || got.Height() != p.Height() {
		t.Fatalf("dimensions = %dx%d; want %dx%d", got.Width(), got.Height(), p.Width(), p.Height())
	}

	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			want := p.At(x, y)
			c := got.At(x, y)
			if math.Abs(float64(c.R-want.R)) > 0.01 ||
				math.Abs(float64(c.G-want.G)) > 0.01 ||
				math.Abs(float64(c.B-want.B)) > 0.01 ||
				math.Abs(float64(c.A-want.A)) > 0.01 {
				t.Errorf("At(%d,%d) = %+v; want ~%+v", x, y, c, want)
			}
		}
	}
}

/****************************************************************************************************************/

// TestLinearizeDelinearizeInverse checks that delinearize(linearize(v)) is
// close to v across the unit interval, since Save round-trips every pixel
// through both functions.
func TestLinearizeDelinearizeInverse(t *testing.T) {
	for _, v := range []float32{0, 0.01, 0.04045, 0.1, 0.5, 0.9, 1} {
		got := delinearize(linearize(v))
		if math.Abs(float64(got-v)) > 1e-4 {
			t.Errorf("delinearize(linearize(%v)) = %v; want ~%v", v, got, v)
		}
	}
}

/****************************************************************************************************************/

// TestSaveDeclaresSRGBChunk confirms Save splices an sRGB chunk into the
// PNG stream it writes, immediately after IHDR.
func TestSaveDeclaresSRGBChunk(t *testing.T) {
	p, err := pixmap.New(1, 1)
	if err != nil {
		t.Fatalf("pixmap.New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "srgb.png")
	if err := Save(p, path, BitDepth8); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	ihdrLen := int(uint32(data[8])<<24 | uint32(data[9])<<16 | uint32(data[10])<<8 | uint32(data[11]))
	sRGBOffset := 8 + 8 + ihdrLen + 4
	if string(data[sRGBOffset+4:sRGBOffset+8]) != "sRGB" {
		t.Fatalf("expected sRGB chunk immediately after IHDR, got type %q", data[sRGBOffset+4:sRGBOffset+8])
	}
}

/****************************************************************************************************************/
