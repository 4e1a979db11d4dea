/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package renderopts defines the small flag set threaded through every
// source and sink call: which supersampling grid size to use, and whether
// to jitter sample positions.
package renderopts

/****************************************************************************************************************/

// Options is the Go-native realization of the original tool's RenderOptions
// flag set. It is passed by value, not as a bitmask, since Go has no use
// for one.
type Options struct {
	// Fast selects the smaller (3×3) supersampling grid over the default
	// (11×11) one.
	Fast bool

	// Jitter randomizes sample positions within each supersampling grid
	// cell instead of sampling at fixed offsets.
	Jitter bool
}

/****************************************************************************************************************/

// GridSize returns the supersampling grid side length for these options: 3
// in fast mode, 11 otherwise.
func (o Options) GridSize() int {
	if o.Fast {
		return 3
	}
	return 11
}

/****************************************************************************************************************/
