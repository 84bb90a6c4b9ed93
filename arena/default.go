package arena

import "sync"

var (
	defaultOnce  sync.Once
	defaultArena *SafeArena
	defaultErr   error
)

// DefaultCapacityMiB is the capacity DefaultArena constructs its
// singleton with.
const DefaultCapacityMiB = 4

// DefaultArena returns the process-wide default arena, constructing it
// on first use. Every call before the first ReleaseDefault returns the
// same instance; construction errors are cached and returned on every
// subsequent call until ReleaseDefault resets the singleton.
func DefaultArena() (*SafeArena, error) {
	defaultOnce.Do(func() {
		defaultArena, defaultErr = NewSafeArena(DefaultCapacityMiB)
	})
	return defaultArena, defaultErr
}

// ReleaseDefault releases the process-wide default arena, if one was
// constructed, and allows the next call to DefaultArena to build a fresh
// one.
func ReleaseDefault() {
	if defaultArena != nil {
		defaultArena.Release()
	}
	defaultArena = nil
	defaultErr = nil
	defaultOnce = sync.Once{}
}
