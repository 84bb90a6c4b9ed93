package arena

import (
	"sync"
	"unsafe"

	"github.com/kessler-systems/memres/resource"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. All operations are thread-safe but pay for a mutex lock on
// every call.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena constructs a thread-safe arena with the same semantics as
// New.
func NewSafeArena(capacityMiB uintptr, opts ...Option) (*SafeArena, error) {
	a, err := New(capacityMiB, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Allocate thread-safely allocates size bytes aligned to alignment.
func (s *SafeArena) Allocate(size, alignment uintptr) (unsafe.Pointer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(size, alignment)
}

// Deallocate thread-safely returns a span to the free list.
func (s *SafeArena) Deallocate(ptr unsafe.Pointer, size, alignment uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Deallocate(ptr, size, alignment)
}

// Release thread-safely returns every region to the OS.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// IsEqual thread-safely reports whether other shares this arena's first
// region. other may itself be a *SafeArena or a bare *Arena.
func (s *SafeArena) IsEqual(other resource.Resource) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o, ok := other.(*SafeArena); ok {
		if o == s {
			return true
		}
		o.mu.Lock()
		defer o.mu.Unlock()
		return s.a.IsEqual(o.a)
	}
	return s.a.IsEqual(other)
}

var _ resource.Resource = (*SafeArena)(nil)
