package arena

import (
	"runtime"
	"unsafe"
)

// Alloc allocates space for a T inside the arena, zeroes it, and returns
// a typed pointer. The returned pointer is valid only until the arena is
// released; call runtime.KeepAlive (see PtrAndKeepAlive) if the arena
// might otherwise become unreachable while the pointer is still live.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	ptr, err := a.Allocate(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(ptr), unsafe.Sizeof(zero)))
	return (*T)(ptr), nil
}

// AllocUninitialized is identical to Alloc but skips zeroing, leaving
// the memory's prior contents in place.
func AllocUninitialized[T any](a *Arena) (*T, error) {
	var zero T
	ptr, err := a.Allocate(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// AllocSlice allocates room for n contiguous, zeroed elements of type T.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	ptr, err := a.Allocate(elemSize*uintptr(n), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(ptr), elemSize*uintptr(n)))
	return unsafe.Slice((*T)(ptr), n), nil
}

// FreeSlice returns a slice previously obtained from AllocSlice to the
// arena's free list.
func FreeSlice[T any](a *Arena, s []T) {
	if len(s) == 0 {
		return
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	a.Deallocate(unsafe.Pointer(&s[0]), elemSize*uintptr(len(s)), unsafe.Alignof(zero))
}

// Free returns a value previously obtained from Alloc or
// AllocUninitialized to the arena's free list.
func Free[T any](a *Arena, t *T) {
	var zero T
	a.Deallocate(unsafe.Pointer(t), unsafe.Sizeof(zero), unsafe.Alignof(zero))
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena, to
// keep it from being collected while raw pointers into it are still in
// use.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
