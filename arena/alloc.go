package arena

import (
	"sort"
	"unsafe"

	"github.com/kessler-systems/memres/resource"
)

// Allocate returns a pointer to a span of size bytes aligned to
// alignment, carved from the best-fitting free-list entry available. If
// no entry is large enough the arena grows by one region and retries
// once before reporting out of memory.
func (a *Arena) Allocate(size, alignment uintptr) (unsafe.Pointer, error) {
	if size == 0 || alignment == 0 || !resource.IsPowerOfTwo(alignment) {
		return nil, resource.ErrInvalidArgument
	}

	addr, ok := a.allocateFromFreeList(size, alignment)
	if !ok {
		if err := a.growByOneRegion(); err != nil {
			return nil, err
		}
		addr, ok = a.allocateFromFreeList(size, alignment)
		if !ok {
			return nil, resource.ErrOutOfMemory
		}
	}

	return unsafe.Pointer(addr), nil
}

// allocateFromFreeList carves size bytes out of the best-fitting entry,
// shrinking it in place or removing it outright when fully consumed.
func (a *Arena) allocateFromFreeList(size, alignment uintptr) (uintptr, bool) {
	idx, need, found := a.findFreeBlock(size, alignment)
	if !found {
		return 0, false
	}

	entry := a.freeList[idx]
	adj := need - size
	result := entry.addr + adj

	if entry.size > need {
		a.freeList[idx] = freed{size: entry.size - need, addr: entry.addr + need}
		sortFreeList(a.freeList)
	} else {
		a.freeList = removeFreed(a.freeList, idx)
	}

	a.totalUsed += need
	a.allocations++

	return result, true
}

// growByOneRegion acquires a new region and adds its full usable span to
// the free list as a single entry.
func (a *Arena) growByOneRegion() error {
	r, err := a.acquireRegion()
	if err != nil {
		return err
	}
	a.linkRegion(r)
	a.freeList = append(a.freeList, freed{size: a.maxAlloc, addr: r.usableAddr()})
	sortFreeList(a.freeList)
	return nil
}

// Deallocate returns a previously allocated span to the free list,
// coalescing it with an immediately adjacent neighbor on either side.
func (a *Arena) Deallocate(ptr unsafe.Pointer, size, alignment uintptr) {
	addr := uintptr(ptr)
	adj := resource.ForwardAdjustment(addr, alignment)
	bytes := size + adj
	blockStart := addr - adj
	blockEnd := blockStart + bytes

	// The neighbor search below needs address order; size order is
	// restored before returning.
	sort.Slice(a.freeList, func(i, j int) bool { return a.freeList[i].addr < a.freeList[j].addr })

	i := 0
	for i < len(a.freeList) && a.freeList[i].addr < blockEnd {
		i++
	}

	pos := i
	if i == 0 {
		a.freeList = insertFreed(a.freeList, 0, freed{size: bytes, addr: blockStart})
	} else {
		prev := &a.freeList[i-1]
		if prev.addr+prev.size == blockStart {
			prev.size += bytes
			pos = i - 1
		} else {
			a.freeList = insertFreed(a.freeList, i, freed{size: bytes, addr: blockStart})
			pos = i
		}
	}

	if pos+1 < len(a.freeList) {
		curr := &a.freeList[pos]
		next := a.freeList[pos+1]
		if curr.addr+curr.size == next.addr {
			curr.size += next.size
			a.freeList = removeFreed(a.freeList, pos+1)
		}
	}

	sortFreeList(a.freeList)
	a.allocations--
	a.totalUsed -= bytes
}
