package linear

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/kessler-systems/memres/resource"
)

func TestNew(t *testing.T) {
	r := New(make([]byte, 64))
	if r.Len() != 64 {
		t.Errorf("Len() = %d, want 64", r.Len())
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
}

func TestNewEmptyBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(nil) did not panic")
		}
	}()
	New(nil)
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name      string
		size      uintptr
		alignment uintptr
		wantErr   error
	}{
		{"normal", 16, 8, nil},
		{"zero size", 0, 8, resource.ErrInvalidArgument},
		{"zero alignment", 16, 0, resource.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(make([]byte, 64))
			ptr, err := r.Allocate(tt.size, tt.alignment)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Allocate(%d, %d) err = %v, want %v", tt.size, tt.alignment, err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if ptr == nil {
					t.Fatal("Allocate returned nil pointer with nil error")
				}
				if uintptr(ptr)%tt.alignment != 0 {
					t.Errorf("pointer %#x not aligned to %d", uintptr(ptr), tt.alignment)
				}
			}
		})
	}
}

func TestAllocateOutOfMemory(t *testing.T) {
	r := New(make([]byte, 8))
	if _, err := r.Allocate(16, 1); !errors.Is(err, resource.ErrOutOfMemory) {
		t.Fatalf("Allocate(16, 1) err = %v, want ErrOutOfMemory", err)
	}
}

func TestAllocateAdvancesCount(t *testing.T) {
	r := New(make([]byte, 64))
	if _, err := r.Allocate(10, 1); err != nil {
		t.Fatal(err)
	}
	if r.Count() != 10 {
		t.Errorf("Count() = %d, want 10", r.Count())
	}
	if _, err := r.Allocate(10, 1); err != nil {
		t.Fatal(err)
	}
	if r.Count() != 20 {
		t.Errorf("Count() = %d, want 20", r.Count())
	}
}

func TestResetRestoresCapacity(t *testing.T) {
	r := New(make([]byte, 16))
	if _, err := r.Allocate(16, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Allocate(1, 1); err == nil {
		t.Fatal("expected out of memory before reset")
	}
	r.Reset()
	if r.Count() != 0 {
		t.Errorf("Count() after Reset = %d, want 0", r.Count())
	}
	if _, err := r.Allocate(16, 1); err != nil {
		t.Fatalf("Allocate after Reset failed: %v", err)
	}
}

func TestClearZeroesBuffer(t *testing.T) {
	buf := make([]byte, 16)
	r := New(buf)
	ptr, err := r.Allocate(16, 1)
	if err != nil {
		t.Fatal(err)
	}
	dst := unsafe.Slice((*byte)(ptr), 16)
	for i := range dst {
		dst[i] = 0xFF
	}
	r.Clear()
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %#x after Clear, want 0", i, b)
		}
	}
	if r.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", r.Count())
	}
}

func TestDeallocateIsNoop(t *testing.T) {
	r := New(make([]byte, 16))
	ptr, err := r.Allocate(8, 1)
	if err != nil {
		t.Fatal(err)
	}
	before := r.Count()
	r.Deallocate(ptr, 8, 1)
	if r.Count() != before {
		t.Errorf("Count() changed after Deallocate: %d -> %d", before, r.Count())
	}
}

func TestChangeBuffer(t *testing.T) {
	r := New(make([]byte, 16))
	if _, err := r.Allocate(8, 1); err != nil {
		t.Fatal(err)
	}
	r.ChangeBuffer(make([]byte, 32))
	if r.Len() != 32 {
		t.Errorf("Len() after ChangeBuffer = %d, want 32", r.Len())
	}
	if r.Count() != 8 {
		t.Errorf("Count() after ChangeBuffer = %d, want 8 (preserved)", r.Count())
	}
}

func TestChangeBufferTooSmallPanics(t *testing.T) {
	r := New(make([]byte, 16))
	if _, err := r.Allocate(16, 1); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("ChangeBuffer with too-small buffer did not panic")
		}
	}()
	r.ChangeBuffer(make([]byte, 8))
}

func TestIsEqual(t *testing.T) {
	buf := make([]byte, 16)
	a := New(buf)
	b := New(buf)
	if !a.IsEqual(b) {
		t.Error("two fresh resources over the same buffer should be equal")
	}

	if _, err := a.Allocate(4, 1); err != nil {
		t.Fatal(err)
	}
	if a.IsEqual(b) {
		t.Error("resources with different counts should not be equal")
	}

	c := New(make([]byte, 16))
	if b.IsEqual(c) {
		t.Error("resources over different buffers should not be equal")
	}
}
