/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package vector

/****************************************************************************************************************/

import (
	"math"
	"testing"
)

/****************************************************************************************************************/

// TestLatLongRoundTrip checks that converting a latitude/longitude pair to
// a vector and back recovers the original pair, away from the poles where
// longitude is undefined.
func TestLatLongRoundTrip(t *testing.T) {
	cases := []struct{ lat, lon float64 }{
		{0, 0},
		{0, math.Pi / 2},
		{math.Pi / 4, -math.Pi / 3},
		{-math.Pi / 4, math.Pi - 0.01},
		{0.1, -math.Pi + 0.01},
	}

	for _, c := range cases {
		v := FromLatLongRad(c.lat, c.lon)
		gotLat, gotLon := ToLatLongRad(v)

		if math.Abs(gotLat-c.lat) > 1e-9 {
			t.Errorf("lat round trip: got %v, want %v", gotLat, c.lat)
		}
		if math.Abs(gotLon-c.lon) > 1e-9 {
			t.Errorf("lon round trip: got %v, want %v", gotLon, c.lon)
		}
	}
}

/****************************************************************************************************************/

// TestToLatLongRadAtPoleDefinesLongitudeAsZero checks the documented pole
// convention.
func TestToLatLongRadAtPoleDefinesLongitudeAsZero(t *testing.T) {
	lat, lon := ToLatLongRad(Vector{X: 0, Y: 1, Z: 0})
	if math.Abs(lat-math.Pi/2) > 1e-9 {
		t.Errorf("lat = %v; want pi/2", lat)
	}
	if lon != 0 {
		t.Errorf("lon = %v; want 0", lon)
	}
}

/****************************************************************************************************************/

// TestCoordinateCachesVectorConversion checks that a Coordinate built from
// latitude/longitude computes its vector form lazily and returns a
// consistent value on repeated calls.
func TestCoordinateCachesVectorConversion(t *testing.T) {
	c := FromLatLongDeg(30, 60)

	v1 := c.AsVector()
	v2 := c.AsVector()
	if v1 != v2 {
		t.Fatalf("AsVector is not stable across calls: %v != %v", v1, v2)
	}

	ll := c.AsLatLongDeg()
	if math.Abs(ll.Lat-30) > 1e-9 || math.Abs(ll.Lon-60) > 1e-9 {
		t.Errorf("AsLatLongDeg = %+v; want {30 60}", ll)
	}
}

/****************************************************************************************************************/

// TestCoordinateFromVectorConvertsToLatLong checks the opposite conversion
// direction through the Coordinate type.
func TestCoordinateFromVectorConvertsToLatLong(t *testing.T) {
	c := FromVector(Vector{X: 0, Y: 0, Z: 1})
	ll := c.AsLatLongDeg()
	if math.Abs(ll.Lat) > 1e-9 || math.Abs(ll.Lon) > 1e-9 {
		t.Errorf("AsLatLongDeg = %+v; want {0 0}", ll)
	}
}

/****************************************************************************************************************/
