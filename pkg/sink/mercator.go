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

// mercatorSink renders a square Mercator projection: longitude is linear,
// and latitude is the Gudermannian function of the row. With the 1.5*size
// offset below, row 0 maps to about 85.05°N and row size to the equator,
// and the width spans longitudes -180° to 0°; the southern hemisphere and
// the eastern half of the sphere are not part of the output.
type mercatorSink struct{}

/****************************************************************************************************************/

func (mercatorSink) Render(ctx context.Context, size int, opts renderopts.Options, src source.Source, progress ProgressFunc) (*pixmap.Pixmap, error) {
	width, height := size, size
	if err := validateSize(width, height); err != nil {
		return nil, err
	}

	out, err := pixmap.New(width, height)
	if err != nil {
		return nil, err
	}

	pixelToLatLon := func(px, py float64) (lat, lon float64) {
		lat = 2*math.Atan(math.Exp(((1.5*float64(size)-py)/float64(size)-0.5)*math.Pi)) - math.Pi/2
		lon = (px/float64(size) - 1) * math.Pi
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
