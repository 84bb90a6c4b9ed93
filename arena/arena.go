package arena

import (
	"github.com/kessler-systems/memres/resource"
)

const (
	// DefaultMaxAlloc is the usable byte capacity of a region when no
	// WithMaxAlloc option is given. Combined with headerSize this makes
	// each region exactly 4 MiB.
	DefaultMaxAlloc = 0x003F_FFF8

	// MinMaxAlloc is the smallest usable region capacity WithMaxAlloc
	// will accept; anything smaller is clamped up to it.
	MinMaxAlloc = 0x1000

	// MinCapacityMiB is the smallest total capacity New will accept;
	// anything smaller is clamped up to it.
	MinCapacityMiB = 1

	// DefaultFreeListCap is the number of free-list entries pre-reserved
	// inside region 0 when no WithFreeListCap option is given.
	DefaultFreeListCap = 32

	// MinFreeListCap and MaxFreeListCap bound WithFreeListCap.
	MinFreeListCap = 8
	MaxFreeListCap = 256

	bytesPerMiB = 1 << 20
)

// Arena is a best-fit, coalescing memory resource backed by a chain of
// OS-acquired virtual-memory regions. The zero value is not usable; call
// New.
type Arena struct {
	maxAlloc    uintptr
	freeListCap int

	first *region
	last  *region

	freeList []freed

	totalUsed    uintptr
	totalSize    uintptr
	totalRegions uintptr
	allocations  uintptr
}

type config struct {
	maxAlloc    uintptr
	freeListCap int
}

func defaultConfig() config {
	return config{maxAlloc: DefaultMaxAlloc, freeListCap: DefaultFreeListCap}
}

// Option configures an Arena at construction time.
type Option func(*config)

// WithMaxAlloc sets the usable byte capacity of every region the arena
// acquires. Values below MinMaxAlloc are clamped up to it.
func WithMaxAlloc(n uintptr) Option {
	return func(c *config) {
		if n < MinMaxAlloc {
			n = MinMaxAlloc
		}
		c.maxAlloc = n
	}
}

// WithFreeListCap sets how many free-list entries are pre-reserved
// inside region 0. Values outside [MinFreeListCap, MaxFreeListCap] are
// clamped into range.
func WithFreeListCap(n int) Option {
	return func(c *config) {
		if n < MinFreeListCap {
			n = MinFreeListCap
		}
		if n > MaxFreeListCap {
			n = MaxFreeListCap
		}
		c.freeListCap = n
	}
}

// New constructs an arena with at least capacityMiB mebibytes of total
// capacity, rounded up to a whole number of regions. It acquires every
// region up front; if any acquisition fails, the regions already
// acquired are released and the error is returned.
func New(capacityMiB uintptr, opts ...Option) (*Arena, error) {
	if capacityMiB < MinCapacityMiB {
		capacityMiB = MinCapacityMiB
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Arena{maxAlloc: cfg.maxAlloc, freeListCap: cfg.freeListCap}

	span := a.regionSpan()
	capacityBytes := capacityMiB * bytesPerMiB
	blocks := (capacityBytes + span - 1) / span
	if blocks == 0 {
		blocks = 1
	}

	for i := uintptr(0); i < blocks; i++ {
		r, err := a.acquireRegion()
		if err != nil {
			releaseChain(a.first, span)
			return nil, err
		}
		a.linkRegion(r)
	}

	if err := a.bootstrapFreeList(cfg.freeListCap); err != nil {
		releaseChain(a.first, span)
		return nil, err
	}

	return a, nil
}

// Release returns every region the arena holds back to the OS. The
// arena must not be used afterward.
func (a *Arena) Release() {
	releaseChain(a.first, a.regionSpan())
	a.first = nil
	a.last = nil
	a.freeList = nil
}

// IsEqual reports whether other is the same arena, identified by a
// shared first region.
func (a *Arena) IsEqual(other resource.Resource) bool {
	o, ok := other.(*Arena)
	if !ok {
		return false
	}
	return a.first == o.first
}

var _ resource.Resource = (*Arena)(nil)
