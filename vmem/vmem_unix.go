//go:build unix

package vmem

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/kessler-systems/memres/resource"
)

// retryDivisor sets the floor ReserveCommit backs off to before giving up.
const retryDivisor = 16

// ReserveCommit maps size bytes of anonymous, read-write, private memory.
// On ENOMEM, EOVERFLOW, or EAGAIN it halves the request and retries until
// the requested size drops below size/16, then fails.
func ReserveCommit(size uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, resource.ErrInvalidArgument
	}

	minSize := size / retryDivisor
	if minSize < 1 {
		minSize = size
	}

	request := size
	for request >= minSize {
		data, err := unix.Mmap(-1, 0, int(request), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
		if err == nil {
			return unsafe.Pointer(&data[0]), nil
		}
		if err != unix.ENOMEM && err != unix.EOVERFLOW && err != unix.EAGAIN {
			break
		}
		request /= 2
	}

	return nil, resource.ErrOutOfMemory
}

// Release returns the span starting at ptr, of the given size, to the OS.
func Release(ptr unsafe.Pointer, size uintptr) error {
	data := unsafe.Slice((*byte)(ptr), size)
	return unix.Munmap(data)
}
