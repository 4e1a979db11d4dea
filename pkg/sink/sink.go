/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package sink implements the five projection renderers: each allocates an
// output pixmap with projection-specific dimensions and drives the
// scheduler to fill it, reconstructing every output pixel from a
// supersampled, Gaussian-weighted neighborhood of source samples.
package sink

/****************************************************************************************************************/

import (
	"context"
	"fmt"
	"math"

	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/scheduler"
	"github.com/stellarforge/planetcast/pkg/source"
)

/****************************************************************************************************************/

// MaxDimension is the pixmap dimension ceiling enforced by every sink's
// output-size validation: no sink will allocate a pixmap wider or taller
// than this many pixels.
const MaxDimension = 1 << 16

// ProgressFunc reports render progress as a numerator/denominator pair
// and returns false to request cancellation. It is the facade-facing
// equivalent of scheduler.ProgressFunc, reused verbatim.
type ProgressFunc = scheduler.ProgressFunc

/****************************************************************************************************************/

// Sink allocates an output pixmap with projection-specific dimensions and
// fills it by sampling src.
type Sink interface {
	Render(ctx context.Context, size int, opts renderopts.Options, src source.Source, progress ProgressFunc) (*pixmap.Pixmap, error)
}

/****************************************************************************************************************/

// Kind identifies which sink to construct: the output projection.
type Kind string

const (
	KindLatLong      Kind = "latlong"
	KindCubeVertical Kind = "cube"
	KindCubeCross    Kind = "cubex"
	KindMercator     Kind = "mercator"
	KindGallPeters   Kind = "gall-peters"
)

/****************************************************************************************************************/

// New constructs the sink named by kind.
func New(kind Kind) (Sink, error) {
	switch kind {
	case KindLatLong:
		return latLongSink{}, nil
	case KindCubeVertical:
		return cubeSink{cross: false}, nil
	case KindCubeCross:
		return cubeSink{cross: true}, nil
	case KindMercator:
		return mercatorSink{}, nil
	case KindGallPeters:
		return gallPetersSink{}, nil
	default:
		return nil, fmt.Errorf("sink: unknown kind %q", kind)
	}
}

/****************************************************************************************************************/

// validateSize checks the output-size contract: size must be positive, and
// neither allocated dimension may exceed MaxDimension.
func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("sink: output size must be at least 1 pixel, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("sink: output size %dx%d exceeds the %d pixel dimension ceiling", width, height, MaxDimension)
	}
	return nil
}

/****************************************************************************************************************/

// roundHalfAwayFromZero implements the "round(2*size/pi)" Gall-Peters
// height formula; math.Round already rounds halves away from zero.
func roundHalfAwayFromZero(v float64) int {
	return int(math.Round(v))
}

/****************************************************************************************************************/
