// File: internal/affinity/affinity.go
// Author: Tim Raphael
//
// Platform-neutral API for CPU affinity. Platform-specific
// implementations live in separate files guarded by build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that
// thread to the given logical CPU. On unsupported platforms it returns
// an error and leaves the thread unlocked.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin releases the OS thread lock taken by Pin. The kernel-side
// affinity mask is left as is; the thread is returned to the pool.
func Unpin() {
	runtime.UnlockOSThread()
}
