//go:build !unix && !windows

package vmem

import (
	"unsafe"

	"github.com/kessler-systems/memres/resource"
)

// ReserveCommit always fails: this platform has no anonymous-mapping
// primitive wired up.
func ReserveCommit(size uintptr) (unsafe.Pointer, error) {
	return nil, resource.ErrOutOfMemory
}

// Release is unreachable in practice since ReserveCommit never succeeds,
// but is provided so the package remains a complete implementation of the
// platform primitive pair on every GOOS.
func Release(ptr unsafe.Pointer, size uintptr) error {
	return nil
}
