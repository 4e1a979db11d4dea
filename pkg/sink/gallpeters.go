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

	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/scheduler"
	"github.com/stellarforge/planetcast/pkg/source"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

// gallPetersSink renders the Gall-Peters equal-area cylindrical projection:
// longitude is linear, latitude follows an arcsine law that preserves
// area at the cost of shape, which is why the output is shorter than it
// is wide rather than the 2:1 of latLongSink.
type gallPetersSink struct{}

/****************************************************************************************************************/

func (gallPetersSink) Render(ctx context.Context, size int, opts renderopts.Options, src source.Source, progress ProgressFunc) (*pixmap.Pixmap, error) {
	width := size
	height := roundHalfAwayFromZero(2 * float64(size) / math.Pi)
	if err := validateSize(width, height); err != nil {
		return nil, err
	}

	out, err := pixmap.New(width, height)
	if err != nil {
		return nil, err
	}

	pixelToLatLon := func(px, py float64) (lat, lon float64) {
		lat = math.Asin(clamp(py*(-2/float64(height))+1, -1, 1))
		lon = (px*(2/float64(width)) - 1) * math.Pi
		return lat, lon
	}

	lineFn := func(y int) bool {
		for x := 0; x < width; x++ {
			out.Set(x, y, accumulate(opts, boxHalfWidth, func(dx, dy float64) pixmap.Color {
				lat, lon := pixelToLatLon(float64(x)+dx, float64(y)+dy)
				coord := vector.FromLatLongRadCoordinate(lat, lon)
				return src.Sample(coord, opts)
			}))
		}
		return true
	}

	ok := scheduler.Schedule(ctx, height, 0, 1, lineFn, progress)
	if !ok {
		return nil, nil
	}
	return out, nil
}

/****************************************************************************************************************/

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

/****************************************************************************************************************/
