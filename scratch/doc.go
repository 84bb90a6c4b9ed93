// Package scratch implements a scratch buffer resource: a linear buffer
// that, once exhausted, pulls a fresh slab from an optional upstream
// resource and keeps going.
//
// # Basic Usage
//
//	upstream, err := arena.DefaultArena()
//	if err != nil {
//	    // out of memory
//	}
//	buf := make([]byte, 256)
//	res := scratch.New(buf, upstream)
//
//	ptr, err := res.Allocate(1024, 8) // exceeds buf, falls back to upstream
//
// With no upstream, a scratch resource behaves exactly like a linear one:
// it fails once its local buffer is exhausted.
package scratch
