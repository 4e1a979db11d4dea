/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package gauss builds and samples the discrete Gaussian weight tables the
// sink supersampling kernels use to turn a grid of nearby samples into a
// single weighted-average pixel.
package gauss

/****************************************************************************************************************/

import "gonum.org/v1/gonum/stat/distuv"

/****************************************************************************************************************/

// Width is the fixed normal-distribution width constant from the original
// tool: narrower tables sample a tighter neighborhood of the pixel center.
const Width = 2.2

/****************************************************************************************************************/

// Table is an ordered, un-normalized sequence of Gaussian weights. Its
// length is always odd (3 in fast mode, 11 otherwise); the consumer
// normalizes by the summed weight of whichever samples it actually took,
// not by a fixed table sum.
type Table []float64

/****************************************************************************************************************/

// Build returns a table of n weights, entry i equal to
// exp(-((mid-i)/mid)^2 * Width^2/2) where mid = n/2 - 0.5.
//
// This is computed via gonum's Normal distribution rather than a bare
// math.Exp call: Prob(i) for Normal{Mu: mid, Sigma: mid/Width} is
// proportional to exp(-((mid-i)/mid)^2 * Width^2/2), and the result is then
// rescaled so the table's peak (not its integral) is 1, reproducing the
// un-normalized table the sampling kernels expect.
func Build(n int) Table {
	mid := float64(n)/2 - 0.5

	dist := distuv.Normal{Mu: mid, Sigma: mid / Width}
	peak := dist.Prob(mid)

	out := make(Table, n)
	for i := 0; i < n; i++ {
		out[i] = dist.Prob(float64(i)) / peak
	}
	return out
}

/****************************************************************************************************************/

// Lookup maps a continuous position into the table's index space and
// linearly interpolates between its two neighboring entries, returning 0
// for positions outside [mid-halfWidth, mid+halfWidth].
//
// This fixes the off-by-one in the original jitter-path lookup, which
// sampled the low index twice (table[lo], table[lo]) instead of
// interpolating between table[lo] and table[lo+1].
func Lookup(value, mid, halfWidth float64, table Table) float64 {
	if halfWidth <= 0 || len(table) == 0 {
		return 0
	}

	// Map value into continuous table-index space, where index 0 is
	// mid-halfWidth and index len(table)-1 is mid+halfWidth.
	pos := (value - (mid - halfWidth)) / (2 * halfWidth) * float64(len(table)-1)

	if pos < 0 || pos > float64(len(table)-1) {
		return 0
	}

	lo := int(pos)
	if lo >= len(table)-1 {
		return table[len(table)-1]
	}

	frac := pos - float64(lo)
	return table[lo]*(1-frac) + table[lo+1]*frac
}

/****************************************************************************************************************/

// Lookup2D is the tensor product of two 1D Lookup calls, used by the
// cube-face sampling kernel to weight a 2D jittered grid.
func Lookup2D(x, y, midX, midY, halfWidthX, halfWidthY float64, table Table) float64 {
	return Lookup(x, midX, halfWidthX, table) * Lookup(y, midY, halfWidthY, table)
}

/****************************************************************************************************************/
