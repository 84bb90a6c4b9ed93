// Package arena implements a best-fit, coalescing arena memory resource
// over a chain of OS-backed virtual-memory regions.
//
// # Overview
//
// An arena memory resource acquires large regions of virtual memory from
// the operating system (see package vmem) and serves allocations out of a
// free-list maintained within those regions. Unlike a bump allocator, it
// supports deallocation: freed spans are tracked, coalesced with their
// neighbors, and reused by later allocations using a best-fit policy.
//
// # Basic Usage
//
//	a, err := arena.New(arena.DefaultCapacityMiB)
//	if err != nil {
//	    // out of memory
//	}
//	defer a.Release()
//
//	ptr, err := a.Allocate(64, 8)
//	// ... use the memory ...
//	a.Deallocate(ptr, 64, 8)
//
// # Thread Safety
//
// Arena is not goroutine-safe. Use SafeArena for concurrent access:
//
//	s, err := arena.NewSafeArena(arena.DefaultCapacityMiB)
//	if err != nil {
//	    // out of memory
//	}
//	defer s.Release()
//	ptr, err := s.Allocate(64, 8)
//
// # Memory Layout
//
// The arena acquires regions sized MaxAlloc+header bytes. The free-list's
// own backing storage lives inside the first region, bootstrapped from an
// embedded linear buffer resource. The region chain's nodes are ordinary
// Go values, and a free list that grows past its pre-reserved capacity is
// reallocated onto the Go heap.
//
// # Diagnostics
//
//	stats := a.Stats()
//	fmt.Printf("used %d of %d bytes across %d regions\n",
//	    stats.TotalUsed, stats.TotalSize, stats.TotalRegions)
package arena
