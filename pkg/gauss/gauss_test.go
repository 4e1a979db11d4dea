/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package gauss

/****************************************************************************************************************/

import (
	"math"
	"testing"
)

/****************************************************************************************************************/

// TestBuildIsSymmetricAndPositive checks that a built table is symmetric
// about its center and strictly positive everywhere, matching the
// Gaussian shape the sampling kernels assume.
func TestBuildIsSymmetricAndPositive(t *testing.T) {
	table := Build(11)

	for i, w := range table {
		if w <= 0 {
			t.Errorf("table[%d] = %v; want > 0", i, w)
		}
	}

	for i := 0; i < len(table)/2; i++ {
		j := len(table) - 1 - i
		if math.Abs(table[i]-table[j]) > 1e-9 {
			t.Errorf("table[%d] = %v, table[%d] = %v; want equal by symmetry", i, table[i], j, table[j])
		}
	}
}

/****************************************************************************************************************/

// TestBuildPeaksAtOne checks that the table is rescaled so its maximum
// entry is exactly 1.
func TestBuildPeaksAtOne(t *testing.T) {
	table := Build(11)

	max := 0.0
	for _, w := range table {
		if w > max {
			max = w
		}
	}
	if math.Abs(max-1) > 1e-9 {
		t.Errorf("max table entry = %v; want 1", max)
	}
}

/****************************************************************************************************************/

// TestLookupInterpolatesBetweenNeighbors checks that a position halfway
// between two table indices returns their average, confirming the
// off-by-one fix interpolates table[lo] and table[lo+1] rather than
// sampling table[lo] twice.
func TestLookupInterpolatesBetweenNeighbors(t *testing.T) {
	table := Table{0, 1, 0}
	mid, halfWidth := 1.0, 1.0

	// Index space spans [0, 2] over value space [mid-1, mid+1] = [0, 2],
	// so value 0.5 maps to index 0.5, halfway between table[0]=0 and
	// table[1]=1.
	got := Lookup(0.5, mid, halfWidth, table)
	want := 0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Lookup(0.5, ...) = %v; want %v", got, want)
	}
}

/****************************************************************************************************************/

// TestLookupOutOfRangeIsZero checks the boundary contract.
func TestLookupOutOfRangeIsZero(t *testing.T) {
	table := Build(5)
	if got := Lookup(100, 2, 2, table); got != 0 {
		t.Errorf("Lookup out of range = %v; want 0", got)
	}
}

/****************************************************************************************************************/

// TestLookup2DIsProductOfAxes checks the tensor-product construction.
func TestLookup2DIsProductOfAxes(t *testing.T) {
	table := Build(5)
	x, y := 1.3, 2.7
	mid, half := 2.0, 2.0

	want := Lookup(x, mid, half, table) * Lookup(y, mid, half, table)
	got := Lookup2D(x, y, mid, mid, half, half, table)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Lookup2D = %v; want %v", got, want)
	}
}

/****************************************************************************************************************/
