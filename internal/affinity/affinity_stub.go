//go:build !linux
// +build !linux

// File: internal/affinity/affinity_stub.go
// Author: Tim Raphael
//
// Stub for platforms without single-CPU thread pinning support.

package affinity

import "errors"

// setAffinityPlatform is a stub for platforms where CPU affinity is
// not supported.
func setAffinityPlatform(cpuID int) error {
	return errors.New("affinity: not supported on this platform")
}
