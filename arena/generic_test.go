package arena

import "testing"

type point struct{ x, y int32 }

func TestAllocGeneric(t *testing.T) {
	a, err := New(1)
	if err != nil {
		t.Fatalf("New err = %v", err)
	}
	defer a.Release()

	p, err := Alloc[point](a)
	if err != nil {
		t.Fatalf("Alloc err = %v", err)
	}
	if *p != (point{}) {
		t.Fatalf("Alloc did not zero memory: %+v", *p)
	}

	p.x, p.y = 3, 4
	Free(a, p)

	if got := a.Stats().Allocations; got != 1 {
		t.Fatalf("Allocations after Free = %d, want 1", got)
	}
}

func TestAllocSliceGeneric(t *testing.T) {
	a, err := New(1)
	if err != nil {
		t.Fatalf("New err = %v", err)
	}
	defer a.Release()

	s, err := AllocSlice[int64](a, 10)
	if err != nil {
		t.Fatalf("AllocSlice err = %v", err)
	}
	if len(s) != 10 {
		t.Fatalf("len(s) = %d, want 10", len(s))
	}
	for _, v := range s {
		if v != 0 {
			t.Fatal("AllocSlice did not zero memory")
		}
	}

	FreeSlice(a, s)
	if got := a.Stats().Allocations; got != 1 {
		t.Fatalf("Allocations after FreeSlice = %d, want 1", got)
	}
}

func TestAllocSliceZeroLength(t *testing.T) {
	a, err := New(1)
	if err != nil {
		t.Fatalf("New err = %v", err)
	}
	defer a.Release()

	s, err := AllocSlice[int64](a, 0)
	if err != nil {
		t.Fatalf("AllocSlice(0) err = %v", err)
	}
	if s != nil {
		t.Fatalf("AllocSlice(0) = %v, want nil", s)
	}
}
