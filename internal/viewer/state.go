package viewer

// LoadState tracks a session through its load lifecycle. Transitions are
// monotonic: once Failed or BackgroundDone is reached no further cache writes
// occur.
type LoadState int

const (
	StateUnloaded LoadState = iota
	StateSyncLoaded
	StateBackgroundRunning
	StateBackgroundDone
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateSyncLoaded:
		return "loaded"
	case StateBackgroundRunning:
		return "loading"
	case StateBackgroundDone:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unloaded"
	}
}

// Loading reports whether a background decode is still filling the cache.
func (s LoadState) Loading() bool {
	return s == StateBackgroundRunning
}
