/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package vector implements the unit-sphere coordinate algebra shared by
// every source, filter, and sink: conversion between 3D unit vectors and
// latitude/longitude, and the lazily-converting Coordinate value that lets
// sinks and sources exchange positions in whichever form they produced or
// need, without forcing a trig conversion when both sides already agree.
package vector

/****************************************************************************************************************/

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

/****************************************************************************************************************/

// Vector convention: Y is the north-pole axis, Z points through (0°N,0°E),
// X points through (0°N,90°E); the frame is right-handed.
type Vector = r3.Vec

// DegToRad and RadToDeg convert between degrees and radians.
const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

/****************************************************************************************************************/

// LatLong is a latitude/longitude pair. The unit (radians or degrees) is a
// property of which Coordinate constructor produced it, not of the struct
// itself.
type LatLong struct {
	Lat, Lon float64
}

/****************************************************************************************************************/

// FromLatLongRad converts a latitude/longitude pair in radians to a unit
// vector under this package's axis convention.
func FromLatLongRad(lat, lon float64) Vector {
	return Vector{
		X: math.Sin(lon) * math.Cos(lat),
		Y: math.Sin(lat),
		Z: math.Cos(lon) * math.Cos(lat),
	}
}

/****************************************************************************************************************/

// ToLatLongRad converts a unit vector to a latitude/longitude pair in
// radians. v need not already be normalized; it is normalized internally.
// At the poles (|v.Y| == 1) longitude is defined as 0 by convention.
func ToLatLongRad(v Vector) (lat, lon float64) {
	v = r3.Unit(v)

	lat = math.Asin(v.Y)
	if math.Abs(v.Y) >= 1 {
		return lat, 0
	}

	lon = math.Asin(clamp(v.X/math.Cos(lat), -1, 1))
	if v.Z < 0 {
		if v.X < 0 {
			lon = -math.Pi - lon
		} else {
			lon = math.Pi - lon
		}
	}

	return lat, lon
}

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

// Coordinate is a tagged value carrying either a unit vector or a
// latitude/longitude pair (radians or degrees). Conversion between forms is
// deferred until the opposite form is actually requested, and is cached
// once computed.
type Coordinate struct {
	hasVector bool
	vector    Vector

	hasLatLongRad bool
	latLongRad    LatLong
}

/****************************************************************************************************************/

// FromVector builds a Coordinate from a unit vector.
func FromVector(v Vector) Coordinate {
	return Coordinate{hasVector: true, vector: v}
}

// FromLatLongRadCoordinate builds a Coordinate from a latitude/longitude
// pair in radians.
func FromLatLongRadCoordinate(lat, lon float64) Coordinate {
	return Coordinate{hasLatLongRad: true, latLongRad: LatLong{Lat: lat, Lon: lon}}
}

// FromLatLongDeg builds a Coordinate from a latitude/longitude pair in
// degrees.
func FromLatLongDeg(lat, lon float64) Coordinate {
	return FromLatLongRadCoordinate(lat*DegToRad, lon*DegToRad)
}

/****************************************************************************************************************/

// AsVector returns the coordinate as a unit vector, converting and caching
// if it was constructed from latitude/longitude.
func (c *Coordinate) AsVector() Vector {
	if !c.hasVector {
		c.vector = FromLatLongRad(c.latLongRad.Lat, c.latLongRad.Lon)
		c.hasVector = true
	}
	return c.vector
}

/****************************************************************************************************************/

// AsLatLongRad returns the coordinate as a latitude/longitude pair in
// radians, converting and caching if it was constructed from a vector.
func (c *Coordinate) AsLatLongRad() LatLong {
	if !c.hasLatLongRad {
		lat, lon := ToLatLongRad(c.vector)
		c.latLongRad = LatLong{Lat: lat, Lon: lon}
		c.hasLatLongRad = true
	}
	return c.latLongRad
}

/****************************************************************************************************************/

// AsLatLongDeg returns the coordinate as a latitude/longitude pair in
// degrees.
func (c *Coordinate) AsLatLongDeg() LatLong {
	ll := c.AsLatLongRad()
	return LatLong{Lat: ll.Lat * RadToDeg, Lon: ll.Lon * RadToDeg}
}

/****************************************************************************************************************/
