/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package source

/****************************************************************************************************************/

import (
	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

// GridOptions configures the procedural grid generator. The CLI's grid
// keyword always uses the zero value (10° spacing, 0.25° half-width); the
// fields exist for library callers that want a denser or sparser grid.
type GridOptions struct {
	// SpacingDeg is the angular spacing between grid lines, in degrees.
	// Zero selects the default of 10°.
	SpacingDeg float64

	// HalfWidthDeg is the half-width of each drawn grid line, in degrees.
	// Zero selects the default of 0.25°.
	HalfWidthDeg float64
}

/****************************************************************************************************************/

var (
	latGridWest  = pixmap.Color{R: 1, G: 0, B: 0, A: 1}
	latGridEast  = pixmap.Color{R: 0, G: 0.5, B: 0.5, A: 1}
	lonGridNorth = pixmap.Color{R: 0, G: 0, B: 1, A: 1}
	lonGridSouth = pixmap.Color{R: 0, G: 1, B: 0, A: 1}
)

// fixedScale is 2^24, the "10° = 2^24" fixed-point unit the original grid
// generator's design specifies: one fixedScale worth of fixed-point
// distance represents exactly one SpacingDeg-wide grid cell.
const fixedScale = 1 << 24

/****************************************************************************************************************/

type grid struct {
	spacingDeg, halfWidthDeg float64
}

// NewGrid builds the deterministic procedural grid-line source: it needs no
// input pixmap, only degree-spaced lines of latitude and longitude over a
// white background.
func NewGrid(opts GridOptions) Source {
	g := grid{spacingDeg: opts.SpacingDeg, halfWidthDeg: opts.HalfWidthDeg}
	if g.spacingDeg <= 0 {
		g.spacingDeg = 10
	}
	if g.halfWidthDeg <= 0 {
		g.halfWidthDeg = 0.25
	}
	return g
}

/****************************************************************************************************************/

// fixedWithinCell maps deg into the fixed-point cell-relative coordinate:
// shift to non-negative by adding 360°, then mask off everything but the
// position within the current cell via the low 24 bits. The 360° shift is a
// whole number of cells only when spacingDeg divides 360; for other
// spacings the grid lines are offset from the multiples of spacingDeg.
func fixedWithinCell(deg, spacingDeg float64) uint32 {
	perDegree := float64(fixedScale) / spacingDeg
	shifted := deg*perDegree + 360*perDegree
	return uint32(int64(shifted)) & (fixedScale - 1)
}

/****************************************************************************************************************/

func (g grid) Sample(coord vector.Coordinate, _ renderopts.Options) pixmap.Color {
	ll := coord.AsLatLongDeg()
	halfWidthFixed := uint32(g.halfWidthDeg / g.spacingDeg * fixedScale)

	latFixed := fixedWithinCell(ll.Lat, g.spacingDeg)
	if latFixed < halfWidthFixed || latFixed > fixedScale-halfWidthFixed {
		if ll.Lon < 0 {
			return latGridWest
		}
		return latGridEast
	}

	lonFixed := fixedWithinCell(ll.Lon, g.spacingDeg)
	if lonFixed < halfWidthFixed || lonFixed > fixedScale-halfWidthFixed {
		if ll.Lat < 0 {
			return lonGridSouth
		}
		return lonGridNorth
	}

	return pixmap.White
}

/****************************************************************************************************************/
