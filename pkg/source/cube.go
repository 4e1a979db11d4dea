/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package source

/****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

// Face indexes the six cube faces in the fixed order the original tool
// stacks them: {+X, -X, +Y, -Y, +Z, -Z}.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

/****************************************************************************************************************/

// SelectFace picks the cube face whose outward normal is closest to v (the
// component of largest magnitude) and returns the face-local coordinate
// (u, v) in [-1, +1].
func SelectFace(v vector.Vector) (face Face, u, v2 float64) {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)

	switch {
	case ax >= ay && ax >= az:
		if v.X > 0 {
			return FacePosX, -v.Z / ax, -v.Y / ax
		}
		return FaceNegX, v.Z / ax, -v.Y / ax
	case ay >= ax && ay >= az:
		if v.Y > 0 {
			return FacePosY, v.X / ay, v.Z / ay
		}
		return FaceNegY, v.X / ay, -v.Z / ay
	default:
		if v.Z > 0 {
			return FacePosZ, v.X / az, -v.Y / az
		}
		return FaceNegZ, -v.X / az, -v.Y / az
	}
}

/****************************************************************************************************************/

// faceOffsetFunc returns a face's pixel-space top-left origin within a cube
// reader's backing pixmap, for a face side length s.
type faceOffsetFunc func(face Face, s int) (x, y int)

type cubeSource struct {
	pix    *pixmap.Pixmap
	side   int
	offset faceOffsetFunc
}

/****************************************************************************************************************/

// NewCube builds a source that reads a vertically-stacked cube map: six
// S×S face panels in the fixed order {+x,-x,+y,-y,+z,-z}, one above the
// other, where S = width = height/6.
func NewCube(pix *pixmap.Pixmap) (Source, error) {
	if pix.Height()%6 != 0 {
		return nil, fmt.Errorf("source: cube map height must be a multiple of six pixels")
	}
	side := pix.Height() / 6

	return cubeSource{
		pix:  pix,
		side: side,
		offset: func(face Face, s int) (int, int) {
			return 0, int(face) * s
		},
	}, nil
}

/****************************************************************************************************************/

// cubeCrossOffsets gives the per-face top-left origin, in face-side units,
// of the "+"-shaped cube-cross layout.
var cubeCrossOffsets = map[Face][2]int{
	FacePosX: {2, 1},
	FaceNegX: {0, 1},
	FacePosY: {1, 0},
	FaceNegY: {1, 2},
	FacePosZ: {1, 1},
	FaceNegZ: {3, 1},
}

/****************************************************************************************************************/

// NewCubeCross builds a source that reads the six cube faces laid out in a
// "+"-shaped cross on a 4×3 grid of S×S tiles, where S = width/4 = height/3.
func NewCubeCross(pix *pixmap.Pixmap) (Source, error) {
	if pix.Width()%4 != 0 {
		return nil, fmt.Errorf("source: cube-cross map width must be a multiple of four pixels")
	}
	if pix.Height()%3 != 0 {
		return nil, fmt.Errorf("source: cube-cross map height must be a multiple of three pixels")
	}
	side := pix.Width() / 4

	return cubeSource{
		pix:  pix,
		side: side,
		offset: func(face Face, s int) (int, int) {
			o := cubeCrossOffsets[face]
			return o[0] * s, o[1] * s
		},
	}, nil
}

/****************************************************************************************************************/

func (s cubeSource) Sample(coord vector.Coordinate, _ renderopts.Options) pixmap.Color {
	v := coord.AsVector()
	face, u, v2 := SelectFace(v)

	side := float64(s.side)
	px := u*side/2 + side/2
	py := v2*side/2 + side/2

	ox, oy := s.offset(face, s.side)

	return bilinearClamp(s.pix.View(ox, oy, s.side, s.side), px, py)
}

/****************************************************************************************************************/
