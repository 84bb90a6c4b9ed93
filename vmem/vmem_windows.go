//go:build windows

package vmem

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/kessler-systems/memres/resource"
)

// ReserveCommit reserves and commits size bytes of read-write memory.
// Unlike the POSIX implementation, there is no retry on failure: Windows
// allocation failure is terminal.
func ReserveCommit(size uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, resource.ErrInvalidArgument
	}

	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return nil, resource.ErrOutOfMemory
	}

	return unsafe.Pointer(addr), nil
}

// Release releases the span starting at ptr back to the OS. size is
// unused: VirtualFree with MEM_RELEASE requires a size of zero and
// releases the entire region the address was reserved with.
func Release(ptr unsafe.Pointer, size uintptr) error {
	return windows.VirtualFree(uintptr(ptr), 0, windows.MEM_RELEASE)
}
