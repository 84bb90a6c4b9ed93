//go:build unix

package vmem

import (
	"testing"
	"unsafe"
)

func TestReserveCommitAndRelease(t *testing.T) {
	const size = 64 * 1024

	ptr, err := ReserveCommit(size)
	if err != nil {
		t.Fatalf("ReserveCommit(%d) err = %v", size, err)
	}
	if ptr == nil {
		t.Fatal("ReserveCommit returned nil pointer with nil error")
	}

	// The mapping should be read-write: writing to the first and last
	// byte must not fault.
	data := unsafe.Slice((*byte)(ptr), size)
	data[0] = 0xAB
	data[size-1] = 0xCD
	if data[0] != 0xAB || data[size-1] != 0xCD {
		t.Fatal("mapped memory did not retain written bytes")
	}

	if err := Release(ptr, size); err != nil {
		t.Fatalf("Release() err = %v", err)
	}
}

func TestReserveCommitZeroSize(t *testing.T) {
	if _, err := ReserveCommit(0); err == nil {
		t.Fatal("ReserveCommit(0) did not fail")
	}
}
