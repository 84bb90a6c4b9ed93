package linear

import (
	"unsafe"

	"github.com/kessler-systems/memres/resource"
)

// Resource is a linear buffer resource: it allocates forward from a
// caller-supplied buffer, and can only be reclaimed in bulk via Reset or
// Clear.
type Resource struct {
	buffer []byte
	count  uintptr
}

// New constructs a linear resource over buffer. buffer must be non-empty;
// New panics otherwise, matching the precondition every allocator in this
// module asserts at construction.
func New(buffer []byte) *Resource {
	if len(buffer) == 0 {
		panic("linear: buffer must not be empty")
	}
	return &Resource{buffer: buffer}
}

// Len returns the buffer's total capacity in bytes.
func (r *Resource) Len() uintptr {
	return uintptr(len(r.buffer))
}

// Count returns the number of bytes currently consumed.
func (r *Resource) Count() uintptr {
	return r.count
}

// Allocate advances the buffer's bump pointer by size bytes, forward-
// aligned to alignment, and returns a pointer to the start of that span.
func (r *Resource) Allocate(size, alignment uintptr) (unsafe.Pointer, error) {
	if size == 0 || alignment == 0 {
		return nil, resource.ErrInvalidArgument
	}

	base := uintptr(unsafe.Pointer(&r.buffer[0]))
	adjustment := resource.ForwardAdjustment(base+r.count, alignment)
	oldCount := r.count + adjustment
	newCount := oldCount + size
	if newCount > uintptr(len(r.buffer)) {
		return nil, resource.ErrOutOfMemory
	}

	r.count = newCount
	return unsafe.Pointer(base + oldCount), nil
}

// Deallocate is a no-op: a linear resource only reclaims memory in bulk
// via Reset or Clear.
func (r *Resource) Deallocate(ptr unsafe.Pointer, size, alignment uintptr) {
}

// Reset rewinds the bump pointer to the start of the buffer without
// touching its contents. O(1).
func (r *Resource) Reset() {
	r.count = 0
}

// Clear zeroes the entire buffer and then resets it.
func (r *Resource) Clear() {
	clear(r.buffer)
	r.Reset()
}

// ChangeBuffer replaces the backing storage. The new buffer must be able
// to hold everything already counted as used; ChangeBuffer panics
// otherwise. This is exposed for scratch.Resource, which rebinds to a
// freshly acquired upstream slab once its own buffer is exhausted.
func (r *Resource) ChangeBuffer(buffer []byte) {
	if len(buffer) == 0 {
		panic("linear: buffer must not be empty")
	}
	if r.count > uintptr(len(buffer)) {
		panic("linear: new buffer too small for bytes already in use")
	}
	r.buffer = buffer
}

// IsEqual reports whether other is a *Resource sharing the same buffer,
// length, and count as r.
func (r *Resource) IsEqual(other resource.Resource) bool {
	o, ok := other.(*Resource)
	if !ok {
		return false
	}
	return len(r.buffer) == len(o.buffer) && r.count == o.count &&
		(len(r.buffer) == 0 || &r.buffer[0] == &o.buffer[0])
}

var _ resource.Resource = (*Resource)(nil)
