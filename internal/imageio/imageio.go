/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package imageio is the facade's only collaborator that touches a real
// file: it decodes an input PNG into a linear-light pixmap.Pixmap and
// encodes a rendered pixmap.Pixmap back out to PNG, gamma-correcting in
// both directions. Everything downstream of Load and upstream of Save
// operates in linear light.
package imageio

/****************************************************************************************************************/

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/stellarforge/planetcast/pkg/pixmap"
)

/****************************************************************************************************************/

// BitDepth selects the per-channel precision Save encodes.
type BitDepth int

const (
	BitDepth8  BitDepth = 8
	BitDepth16 BitDepth = 16
)

/****************************************************************************************************************/

// Load decodes the PNG at path into a linear-light pixmap. 8-bit, 16-bit,
// grayscale, and palette source images are all accepted: image/png already
// normalizes every one of these to an image.Image, and Load reads every
// pixel through color.NRGBA64Model (straight, not premultiplied, alpha, as
// Save writes it) to pick up 16-bit precision where the source provides it.
func Load(path string) (*pixmap.Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	out, err := pixmap.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", path, err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgba := color.NRGBA64Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
			out.Set(x, y, pixmap.Color{
				R: linearize(float32(rgba.R) / 0xffff),
				G: linearize(float32(rgba.G) / 0xffff),
				B: linearize(float32(rgba.B) / 0xffff),
				A: float32(rgba.A) / 0xffff,
			})
		}
	}

	return out, nil
}

/****************************************************************************************************************/

// Save delinearizes p and writes it to path as a PNG at the given bit
// depth, declaring the sRGB chunk so downstream viewers interpret the
// gamma curve the way this module applied it.
func Save(p *pixmap.Pixmap, path string, depth BitDepth) error {
	width, height := p.Width(), p.Height()

	var img draw16or8
	switch depth {
	case BitDepth16:
		img = newNRGBA64(width, height)
	default:
		img = newNRGBA(width, height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := p.At(x, y)
			img.setPixel(x, y, delinearize(c.R), delinearize(c.G), delinearize(c.B), clamp01(c.A))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.image()); err != nil {
		return fmt.Errorf("imageio: encoding %s: %w", path, err)
	}

	data, err := insertSRGBChunk(buf.Bytes())
	if err != nil {
		return fmt.Errorf("imageio: %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("imageio: writing %s: %w", path, err)
	}
	return nil
}

/****************************************************************************************************************/

// draw16or8 lets Save share one pixel loop across the 8-bit and 16-bit
// output paths, which otherwise need distinct image.Image concrete types.
type draw16or8 interface {
	setPixel(x, y int, r, g, b, a float32)
	image() image.Image
}

type nrgba8 struct{ im *image.NRGBA }

func newNRGBA(w, h int) draw16or8 { return nrgba8{image.NewNRGBA(image.Rect(0, 0, w, h))} }

func (n nrgba8) setPixel(x, y int, r, g, b, a float32) {
	n.im.SetNRGBA(x, y, color.NRGBA{
		R: uint8(clamp01(r)*255 + 0.5),
		G: uint8(clamp01(g)*255 + 0.5),
		B: uint8(clamp01(b)*255 + 0.5),
		A: uint8(a*255 + 0.5),
	})
}

func (n nrgba8) image() image.Image { return n.im }

type nrgba16 struct{ im *image.NRGBA64 }

func newNRGBA64(w, h int) draw16or8 { return nrgba16{image.NewNRGBA64(image.Rect(0, 0, w, h))} }

func (n nrgba16) setPixel(x, y int, r, g, b, a float32) {
	n.im.SetNRGBA64(x, y, color.NRGBA64{
		R: uint16(clamp01(r)*65535 + 0.5),
		G: uint16(clamp01(g)*65535 + 0.5),
		B: uint16(clamp01(b)*65535 + 0.5),
		A: uint16(a*65535 + 0.5),
	})
}

func (n nrgba16) image() image.Image { return n.im }

/****************************************************************************************************************/

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

/****************************************************************************************************************/

// linearize converts an sRGB-encoded channel value in [0,1] to linear
// light, and delinearize is its inverse. Both use the piecewise sRGB
// transfer function rather than a flat power curve, since the flat
// approximation visibly clips near black.
func linearize(v float32) float32 {
	x := float64(v)
	if x <= 0.04045 {
		return float32(x / 12.92)
	}
	return float32(math.Pow((x+0.055)/1.055, 2.4))
}

func delinearize(v float32) float32 {
	x := float64(clamp01(v))
	if x <= 0.0031308 {
		return float32(x * 12.92)
	}
	return float32(1.055*math.Pow(x, 1/2.4) - 0.055)
}

/****************************************************************************************************************/

// insertSRGBChunk splices an sRGB chunk (rendering intent: perceptual)
// into an already-encoded PNG, immediately after the mandatory IHDR
// chunk. image/png has no hook for writing ancillary chunks itself, so
// this operates directly on the chunk stream per the PNG spec: an 8-byte
// signature followed by 4-byte length + 4-byte type + data + 4-byte CRC32
// chunks.
func insertSRGBChunk(png []byte) ([]byte, error) {
	const sigLen = 8
	if len(png) < sigLen+8 {
		return nil, fmt.Errorf("not a valid PNG stream")
	}

	ihdrLen := int(uint32(png[sigLen])<<24 | uint32(png[sigLen+1])<<16 | uint32(png[sigLen+2])<<8 | uint32(png[sigLen+3]))
	ihdrEnd := sigLen + 8 + ihdrLen + 4
	if ihdrEnd > len(png) {
		return nil, fmt.Errorf("truncated IHDR chunk")
	}

	chunk := encodeChunk("sRGB", []byte{0})

	out := make([]byte, 0, len(png)+len(chunk))
	out = append(out, png[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, png[ihdrEnd:]...)
	return out, nil
}

/****************************************************************************************************************/

func encodeChunk(chunkType string, data []byte) []byte {
	buf := make([]byte, 0, 12+len(data))
	buf = append(buf, byte(len(data)>>24), byte(len(data)>>16), byte(len(data)>>8), byte(len(data)))
	buf = append(buf, chunkType...)
	buf = append(buf, data...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	sum := crc.Sum32()
	buf = append(buf, byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum))

	return buf
}

/****************************************************************************************************************/
