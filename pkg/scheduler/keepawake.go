/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package scheduler

/****************************************************************************************************************/

import "sync/atomic"

/****************************************************************************************************************/

// keepAwakeCount is a process-wide advisory counter, incremented for the
// duration of every scheduled render and decremented on every exit path
// (including a panic unwinding through the deferred release). There is no
// pure-Go "prevent idle sleep" API available without cgo on the platforms
// this module targets, so the counter is otherwise a no-op.
var keepAwakeCount atomic.Int32

/****************************************************************************************************************/

// KeepAwake increments the advisory keep-awake counter and returns a
// closure that decrements it. Callers should always invoke the returned
// closure via defer, so it runs on every exit path.
func KeepAwake() (release func()) {
	keepAwakeCount.Add(1)
	var released atomic.Bool
	return func() {
		if released.CompareAndSwap(false, true) {
			keepAwakeCount.Add(-1)
		}
	}
}

/****************************************************************************************************************/

// KeepAwakeActive reports whether any render is currently holding the
// keep-awake advisory, for diagnostics only.
func KeepAwakeActive() bool {
	return keepAwakeCount.Load() > 0
}

/****************************************************************************************************************/
