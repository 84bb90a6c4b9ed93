package scratch

import (
	"errors"
	"unsafe"

	"github.com/kessler-systems/memres/linear"
	"github.com/kessler-systems/memres/resource"
)

// Resource is a linear buffer resource backed by an optional upstream
// resource consulted when the local buffer is exhausted.
type Resource struct {
	local    *linear.Resource
	upstream resource.Resource
}

// New constructs a scratch resource over buffer. upstream may be nil, in
// which case Resource behaves exactly like a plain linear buffer.
func New(buffer []byte, upstream resource.Resource) *Resource {
	return &Resource{
		local:    linear.New(buffer),
		upstream: upstream,
	}
}

// Allocate tries the local buffer first. If that fails, and an upstream is
// configured, it requests a slab of twice size bytes from the upstream,
// rebinds the local buffer to the start of that slab, and retries; later
// allocations are served from the rest of the slab until it runs out.
func (r *Resource) Allocate(size, alignment uintptr) (unsafe.Pointer, error) {
	ptr, err := r.local.Allocate(size, alignment)
	if err == nil {
		return ptr, nil
	}
	if !errors.Is(err, resource.ErrOutOfMemory) {
		return nil, err
	}
	if r.upstream == nil {
		return nil, resource.ErrOutOfMemory
	}

	slabSize := 2 * size
	slab, err := r.upstream.Allocate(slabSize, alignment)
	if err != nil {
		return nil, resource.ErrOutOfMemory
	}

	r.local.Reset()
	r.local.ChangeBuffer(unsafe.Slice((*byte)(slab), slabSize))
	return r.local.Allocate(size, alignment)
}

// Deallocate delegates to the embedded linear buffer, which is a no-op.
func (r *Resource) Deallocate(ptr unsafe.Pointer, size, alignment uintptr) {
	r.local.Deallocate(ptr, size, alignment)
}

// Reset rewinds the local buffer. It does not return the most recent
// upstream slab; the upstream resource remains the active buffer until
// the next upstream-backed allocation replaces it again.
func (r *Resource) Reset() {
	r.local.Reset()
}

// IsEqual reports whether other is a *Resource with a matching upstream
// and an equal embedded linear buffer.
func (r *Resource) IsEqual(other resource.Resource) bool {
	o, ok := other.(*Resource)
	if !ok {
		return false
	}
	switch {
	case r.upstream == nil && o.upstream == nil:
		// both absent, fall through to buffer comparison
	case r.upstream == nil || o.upstream == nil:
		return false
	case !r.upstream.IsEqual(o.upstream):
		return false
	}
	return r.local.IsEqual(o.local)
}

var _ resource.Resource = (*Resource)(nil)
