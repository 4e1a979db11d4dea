/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package sink

/****************************************************************************************************************/

import (
	"context"

	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/scheduler"
	"github.com/stellarforge/planetcast/pkg/source"
	"github.com/stellarforge/planetcast/pkg/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

/****************************************************************************************************************/

// cubeBoxScale is the supersampling box half-width in output pixels, added
// directly to the output pixel coordinate before pixelToUV converts it to
// face-UV space — the same convention latlong.go/mercator.go use for their
// own boxHalfWidth. It is somewhat larger than the sibling sinks' 0.5 to
// match the oversampling they get for free from their one-pixel box:
// without it, cube-face corners are undersampled relative to the lat/long
// sinks because the UV metric distorts away from the face center.
const cubeBoxScale = 1.2

/****************************************************************************************************************/

// cubeFaceAxes gives each face's outward normal and "down" direction, in
// the same fixed face order source.Face enumerates. right is derived as
// their cross product, completing a right-handed, face-local frame whose
// origin is the face center.
var cubeFaceAxes = [6]struct{ out, down r3.Vec }{
	{r3.Vec{X: 1}, r3.Vec{Y: -1}},  // +X
	{r3.Vec{X: -1}, r3.Vec{Y: -1}}, // -X
	{r3.Vec{Y: 1}, r3.Vec{Z: 1}},   // +Y
	{r3.Vec{Y: -1}, r3.Vec{Z: -1}}, // -Y
	{r3.Vec{Z: 1}, r3.Vec{Y: -1}},  // +Z
	{r3.Vec{Z: -1}, r3.Vec{Y: -1}}, // -Z
}

/****************************************************************************************************************/

// cubeCrossOffsets mirrors source.cubeCrossOffsets: the per-face top-left
// origin, in face-side units, of the "+"-shaped cube-cross layout. Kept as
// an independent copy rather than an exported source symbol, since the
// sink and the source package have no other reason to share API surface.
var cubeCrossOffsets = map[source.Face][2]int{
	source.FacePosX: {2, 1},
	source.FaceNegX: {0, 1},
	source.FacePosY: {1, 0},
	source.FaceNegY: {1, 2},
	source.FacePosZ: {1, 1},
	source.FaceNegZ: {3, 1},
}

/****************************************************************************************************************/

// cubeSink renders the six cube faces, stacked vertically or laid out in
// a cross, depending on cross.
type cubeSink struct {
	cross bool
}

/****************************************************************************************************************/

func (s cubeSink) Render(ctx context.Context, size int, opts renderopts.Options, src source.Source, progress ProgressFunc) (*pixmap.Pixmap, error) {
	side := size

	var width, height int
	if s.cross {
		width, height = 4*side, 3*side
	} else {
		width, height = side, 6*side
	}
	if err := validateSize(width, height); err != nil {
		return nil, err
	}

	out, err := pixmap.New(width, height)
	if err != nil {
		return nil, err
	}

	faces := [6]source.Face{
		source.FacePosX, source.FaceNegX,
		source.FacePosY, source.FaceNegY,
		source.FacePosZ, source.FaceNegZ,
	}

	halfWidth := cubeBoxScale

	for i, face := range faces {
		axes := cubeFaceAxes[face]
		right := r3.Cross(axes.out, axes.down)

		var ox, oy int
		if s.cross {
			o := cubeCrossOffsets[face]
			ox, oy = o[0]*side, o[1]*side
		} else {
			ox, oy = 0, int(face)*side
		}
		view := out.View(ox, oy, side, side)

		pixelToUV := func(px, py float64) (u, v float64) {
			u = (px/float64(side))*2 - 1
			v = (py/float64(side))*2 - 1
			return u, v
		}

		lineFn := func(y int) bool {
			for x := 0; x < side; x++ {
				view.Set(x, y, accumulate(opts, halfWidth, func(dx, dy float64) pixmap.Color {
					u, v := pixelToUV(float64(x)+dx, float64(y)+dy)
					dir := r3.Add(axes.out, r3.Add(r3.Scale(u, right), r3.Scale(v, axes.down)))
					coord := vector.FromVector(r3.Unit(dir))
					return src.Sample(coord, opts)
				}))
			}
			return true
		}

		ok := scheduler.Schedule(ctx, side, i, 6, lineFn, progress)
		if !ok {
			return nil, nil
		}
	}

	return out, nil
}

/****************************************************************************************************************/
