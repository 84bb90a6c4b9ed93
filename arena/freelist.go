package arena

import (
	"sort"
	"unsafe"

	"github.com/kessler-systems/memres/linear"
	"github.com/kessler-systems/memres/resource"
)

// freed describes one span of reusable memory: size bytes starting at
// addr. The arena keeps one slice of these per instance, sorted ascending
// by size between operations.
type freed struct {
	size uintptr
	addr uintptr
}

// sortFreeList restores the ascending-by-size invariant after a mutation.
// The order among equal-size entries is not meaningful and is not
// preserved across a sort.
func sortFreeList(list []freed) {
	sort.Slice(list, func(i, j int) bool { return list[i].size < list[j].size })
}

// insertFreed inserts e at index i, shifting later entries right.
func insertFreed(list []freed, i int, e freed) []freed {
	list = append(list, freed{})
	copy(list[i+1:], list[i:])
	list[i] = e
	return list
}

// removeFreed removes the entry at index i.
func removeFreed(list []freed, i int) []freed {
	return append(list[:i], list[i+1:]...)
}

// bootstrapFreeList reserves the arena's own free-list storage inside the
// first region and seeds the initial free spans: the remainder of
// region 0 after the free-list slab, plus the full usable span of every
// region acquired after it.
//
// The free-list slice is pre-reserved to cap entries backed by that
// slab. Growing past cap causes Go's append to reallocate onto the
// ordinary heap, same as the vector it is modeled on wandering out of
// its original backing store once it outgrows its reserved capacity;
// that is accepted behavior, not a bug, for both.
func (a *Arena) bootstrapFreeList(cap int) error {
	first := a.first
	freeListBytes := uintptr(cap) * unsafe.Sizeof(freed{})

	backing := unsafe.Slice((*byte)(unsafe.Pointer(first.usableAddr())), freeListBytes)
	buf := linear.New(backing)

	slabPtr, err := buf.Allocate(freeListBytes, unsafe.Alignof(freed{}))
	if err != nil {
		return err
	}

	a.freeList = unsafe.Slice((*freed)(slabPtr), cap)[:0]
	a.totalUsed += freeListBytes
	a.allocations = 1

	a.freeList = append(a.freeList, freed{
		size: a.maxAlloc - freeListBytes,
		addr: first.usableAddr() + freeListBytes,
	})

	for r := first.next; r != nil; r = r.next {
		a.freeList = append(a.freeList, freed{size: a.maxAlloc, addr: r.usableAddr()})
	}

	sortFreeList(a.freeList)
	return nil
}

// findFreeBlock scans the free list for the smallest entry that can
// satisfy a size-byte request at the given alignment, returning its
// index and the total bytes (request plus forward adjustment) it would
// consume. An exact match is preferred the moment one is found; absent
// one, the smallest sufficient entry wins.
func (a *Arena) findFreeBlock(size, alignment uintptr) (index int, need uintptr, found bool) {
	best := -1
	var bestNeed uintptr

	for i := range a.freeList {
		entry := a.freeList[i]
		adj := resource.ForwardAdjustment(entry.addr, alignment)
		n := size + adj

		if entry.size < n {
			continue
		}
		if entry.size == n {
			return i, n, true
		}
		if best == -1 || entry.size < a.freeList[best].size {
			best = i
			bestNeed = n
		}
	}

	if best == -1 {
		return 0, 0, false
	}
	return best, bestNeed, true
}
