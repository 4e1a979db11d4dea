/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package matrix3 implements the fixed 3×3 rotation/scale matrix used to
// compose --rotate and --flip into a single direction-space transform.
package matrix3

/****************************************************************************************************************/

import (
	"math"

	"github.com/stellarforge/planetcast/pkg/vector"
	"gonum.org/v1/gonum/mat"
)

/****************************************************************************************************************/

// Matrix is a 3×3 matrix applied to direction vectors.
type Matrix struct {
	m *mat.Dense
}

/****************************************************************************************************************/

// Identity returns the 3×3 identity matrix.
func Identity() Matrix {
	return Matrix{m: eye()}
}

func eye() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	d.Set(0, 0, 1)
	d.Set(1, 1, 1)
	d.Set(2, 2, 1)
	return d
}

/****************************************************************************************************************/

// RotateX returns the right-handed rotation of theta radians about the X
// axis.
func RotateX(theta float64) Matrix {
	s, c := math.Sin(theta), math.Cos(theta)
	return Matrix{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})}
}

/****************************************************************************************************************/

// RotateY returns the right-handed rotation of theta radians about the Y
// axis.
func RotateY(theta float64) Matrix {
	s, c := math.Sin(theta), math.Cos(theta)
	return Matrix{m: mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})}
}

/****************************************************************************************************************/

// RotateZ returns the right-handed rotation of theta radians about the Z
// axis.
func RotateZ(theta float64) Matrix {
	s, c := math.Sin(theta), math.Cos(theta)
	return Matrix{m: mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})}
}

/****************************************************************************************************************/

// Scale returns the diagonal scale matrix with the given per-axis factors.
// --flip composes Scale(-1, 1, 1) with whatever rotation was requested.
func Scale(sx, sy, sz float64) Matrix {
	return Matrix{m: mat.NewDense(3, 3, []float64{
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	})}
}

/****************************************************************************************************************/

// Multiply returns a*b, applied to a vector as a.MultiplyVector(b.MultiplyVector(v)).
// Composition for --rotate/--flip follows the fixed order
// identity → RotateX(rx) → RotateZ(rz) → RotateY(ry), so that Y is applied
// last and rotates about the original planetary axis.
func Multiply(a, b Matrix) Matrix {
	out := mat.NewDense(3, 3, nil)
	out.Mul(a.m, b.m)
	return Matrix{m: out}
}

/****************************************************************************************************************/

// MultiplyVector rotates v by m. The result is not re-normalized: every
// matrix this package constructs (rotations and the --flip reflection) is
// already norm-preserving, so re-normalizing would only mask a
// caller-supplied matrix that isn't, a case no CLI flag can produce.
func (m Matrix) MultiplyVector(v vector.Vector) vector.Vector {
	return vector.Vector{
		X: m.m.At(0, 0)*v.X + m.m.At(0, 1)*v.Y + m.m.At(0, 2)*v.Z,
		Y: m.m.At(1, 0)*v.X + m.m.At(1, 1)*v.Y + m.m.At(1, 2)*v.Z,
		Z: m.m.At(2, 0)*v.X + m.m.At(2, 1)*v.Y + m.m.At(2, 2)*v.Z,
	}
}

/****************************************************************************************************************/

// IsIdentity reports whether m is exactly the identity matrix. The facade
// uses this to skip the matrix-transform filter entirely when no rotation
// or flip was requested.
func (m Matrix) IsIdentity() bool {
	id := eye()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if m.m.At(r, c) != id.At(r, c) {
				return false
			}
		}
	}
	return true
}

/****************************************************************************************************************/
