package arena

// SafeAlloc thread-safely allocates and zeroes a T.
func SafeAlloc[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocUninitialized thread-safely allocates a T without zeroing it.
func SafeAllocUninitialized[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a zeroed slice of n elements of
// type T.
func SafeAllocSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeFree thread-safely returns a value to the free list.
func SafeFree[T any](s *SafeArena, t *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Free(s.a, t)
}

// SafeFreeSlice thread-safely returns a slice to the free list.
func SafeFreeSlice[T any](s *SafeArena, sl []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	FreeSlice(s.a, sl)
}
