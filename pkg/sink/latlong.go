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

// boxHalfWidth is the supersampling box half-width, in output pixels, used
// by every non-cube sink: one pixel wide, centered on the output pixel.
const boxHalfWidth = 0.5

/****************************************************************************************************************/

// latLongSink renders an equirectangular (plate carree) projection: a
// 2:1 width:height grid spanning the full sphere linearly in both
// latitude and longitude.
type latLongSink struct{}

/****************************************************************************************************************/

func (latLongSink) Render(ctx context.Context, size int, opts renderopts.Options, src source.Source, progress ProgressFunc) (*pixmap.Pixmap, error) {
	width, height := 2*size, size
	if err := validateSize(width, height); err != nil {
		return nil, err
	}

	out, err := pixmap.New(width, height)
	if err != nil {
		return nil, err
	}

	pixelToLatLon := func(px, py float64) (lat, lon float64) {
		lat = ((float64(size)-py)/float64(size) - 0.5) * math.Pi
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
