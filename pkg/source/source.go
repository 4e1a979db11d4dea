/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package source implements the spherical pixel sources: pure mappings from
// a direction on the unit sphere to a color, decoded from an input image or
// generated procedurally.
package source

/****************************************************************************************************************/

import (
	"fmt"

	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

// Source is the Go-native replacement for the original tool's function-
// pointer-plus-context SourceFunction/SourceContext pair: a value closed
// over whatever state it needs, sampled many times concurrently by the
// scheduler's worker goroutines. Sample must not mutate any state shared
// across calls.
type Source interface {
	Sample(coord vector.Coordinate, opts renderopts.Options) pixmap.Color
}

/****************************************************************************************************************/

// Kind identifies which decoder to construct: lat-long, cube-vertical,
// cube-cross, or the image-less procedural grid generator.
type Kind string

const (
	KindGrid         Kind = "grid"
	KindLatLong      Kind = "latlong"
	KindCubeVertical Kind = "cube"
	KindCubeCross    Kind = "cubex"
)

/****************************************************************************************************************/

// New constructs the decoder named by kind. pix is ignored for KindGrid and
// must be non-nil otherwise.
func New(kind Kind, pix *pixmap.Pixmap, grid GridOptions) (Source, error) {
	switch kind {
	case KindGrid:
		return NewGrid(grid), nil
	case KindLatLong:
		if pix == nil {
			return nil, errNilPixmap(kind)
		}
		return NewLatLong(pix), nil
	case KindCubeVertical:
		if pix == nil {
			return nil, errNilPixmap(kind)
		}
		return NewCube(pix)
	case KindCubeCross:
		if pix == nil {
			return nil, errNilPixmap(kind)
		}
		return NewCubeCross(pix)
	default:
		return nil, fmt.Errorf("source: unknown kind %q", kind)
	}
}

func errNilPixmap(kind Kind) error {
	return fmt.Errorf("source: kind %q requires an input image", kind)
}

/****************************************************************************************************************/
