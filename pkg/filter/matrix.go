/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package filter implements the two source wrappers that sit between a
// decoded source and a sink: a rigid rotation and a cosine-weighted blur.
package filter

/****************************************************************************************************************/

import (
	"github.com/stellarforge/planetcast/pkg/matrix3"
	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/source"
	"github.com/stellarforge/planetcast/pkg/vector"
)

/****************************************************************************************************************/

type matrixTransform struct {
	inner source.Source
	m     matrix3.Matrix
}

// NewMatrixTransform wraps inner so that every sampled direction is
// rotated by m before being handed to inner. The facade only applies this
// wrapper when m is not the identity matrix (matrix3.Matrix.IsIdentity),
// since rotating by the identity is a pure no-op pass-through.
func NewMatrixTransform(inner source.Source, m matrix3.Matrix) source.Source {
	return matrixTransform{inner: inner, m: m}
}

/****************************************************************************************************************/

func (f matrixTransform) Sample(coord vector.Coordinate, opts renderopts.Options) pixmap.Color {
	rotated := f.m.MultiplyVector(coord.AsVector())
	return f.inner.Sample(vector.FromVector(rotated), opts)
}

/****************************************************************************************************************/
