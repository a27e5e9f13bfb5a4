package viewer

import (
	"sync"
	"sync/atomic"
)

// LineCache is an append-only mapping from zero-based line index to decoded
// line text. A single writer appends in index order while readers query
// concurrently; the count is published atomically only after the line is
// stored, so a reader can never observe a torn line or an index beyond the
// stored prefix.
type LineCache struct {
	mu    sync.RWMutex
	lines []string
	count atomic.Int64
}

func NewLineCache() *LineCache {
	return &LineCache{}
}

// Append stores the next line. Owned by the loading goroutine; never called
// concurrently with itself.
func (c *LineCache) Append(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	n := len(c.lines)
	c.mu.Unlock()
	c.count.Store(int64(n))
}

// Line returns the line at index i, or ok=false if it has not been written
// yet. Callers distinguish "not yet decoded" from "past end of file" by
// consulting the session's load state.
func (c *LineCache) Line(i int) (string, bool) {
	if i < 0 || int64(i) >= c.count.Load() {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

// Len returns the number of stored lines. Monotonically non-decreasing over
// the life of a session; it may under-report while a background load runs.
func (c *LineCache) Len() int {
	return int(c.count.Load())
}

// Snapshot copies the stored prefix of lines.
func (c *LineCache) Snapshot() []string {
	n := c.count.Load()
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, n)
	copy(out, c.lines[:n])
	return out
}
