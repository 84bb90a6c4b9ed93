package arena

import (
	"unsafe"

	"github.com/kessler-systems/memres/vmem"
)

// headerSize is the width of the per-region bookkeeping slot: one machine
// word, mirroring a single next-pointer field in the original region
// layout. The arena keeps the region chain itself in ordinary Go memory
// (see region below) rather than overlaying a live pointer onto raw
// mapped bytes, but still reserves and accounts for headerSize bytes at
// the front of every region so the addressing and usage counters match a
// layout that did embed the header in the mapped span.
const headerSize = unsafe.Sizeof(uintptr(0))

// region is one OS-backed span in the arena's chain. addr is the base
// address returned by vmem.ReserveCommit; the first headerSize bytes of
// that span are reserved as the header and never handed out to callers.
type region struct {
	addr uintptr
	next *region
}

func (r *region) usableAddr() uintptr {
	return r.addr + headerSize
}

// regionSpan is the number of bytes reserved per region: the usable
// capacity plus its header.
func (a *Arena) regionSpan() uintptr {
	return a.maxAlloc + headerSize
}

// acquireRegion reserves one new region from the OS and folds its
// bookkeeping cost into the arena's running totals. It does not link the
// region into the chain; callers do that once they know the region was
// acquired successfully.
func (a *Arena) acquireRegion() (*region, error) {
	ptr, err := vmem.ReserveCommit(a.regionSpan())
	if err != nil {
		return nil, err
	}

	a.totalUsed += headerSize
	a.totalSize += a.regionSpan()
	a.totalRegions++

	return &region{addr: uintptr(ptr)}, nil
}

// linkRegion appends r to the tail of the chain in O(1).
func (a *Arena) linkRegion(r *region) {
	if a.first == nil {
		a.first = r
		a.last = r
		return
	}
	a.last.next = r
	a.last = r
}

// releaseChain returns every region in the chain to the OS, tail first,
// mirroring the recursive release order of the original implementation
// so that a region is never freed before the regions chained after it.
func releaseChain(r *region, span uintptr) {
	if r == nil {
		return
	}
	releaseChain(r.next, span)
	vmem.Release(unsafe.Pointer(r.addr), span)
}
