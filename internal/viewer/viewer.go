package viewer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kk-code-lab/fview/internal/fs"
	"github.com/kk-code-lab/fview/internal/textenc"
)

// DefaultChunkSize is the read granularity of the background loader. Files
// larger than twice this load asynchronously.
const DefaultChunkSize = 4096

// binaryHeadLimit caps how much of a large binary file is read for the hex
// view. Keep it bounded so opening a huge archive stays cheap.
const binaryHeadLimit = 256 * 1024

// FileInfo is a read-only snapshot of session metadata. Encoding is empty
// until detection has run (it may stay empty briefly while a background load
// is starting).
type FileInfo struct {
	Name     string
	Path     string
	Kind     fs.Kind
	Size     int64
	Encoding string
}

// Viewer is one load session bound to exactly one path. Create with Open,
// populate with Load, then query Line/LineCount/Content/Status from any
// goroutine while a background decode may still be running. Close cancels
// and awaits the background goroutine.
type Viewer struct {
	path      string
	kind      fs.Kind
	chunkSize int

	cache *LineCache

	mu       sync.Mutex
	started  bool
	raw      []byte
	rawTotal int64
	enc      textenc.Encoding
	encSet   bool
	state    LoadState
	loadErr  error
	cancel   context.CancelFunc
	done     chan struct{}
}

// Open classifies path and constructs an unloaded session for it.
func Open(path string) *Viewer {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Viewer{
		path:      abs,
		kind:      fs.Classify(abs),
		chunkSize: DefaultChunkSize,
		cache:     NewLineCache(),
	}
}

// Load populates the session. Directories and small files load synchronously;
// large files return immediately while a background goroutine fills the line
// cache. Calling Load again while a load is running or finished is a no-op.
func (v *Viewer) Load() error {
	v.mu.Lock()
	if v.started {
		v.mu.Unlock()
		return nil
	}
	v.started = true
	v.mu.Unlock()

	switch v.kind {
	case fs.KindMissing:
		return v.fail(fmt.Errorf("%w: %s", ErrNotFound, v.path))
	case fs.KindDirectory:
		content, err := readDirectoryContent(v.path)
		if err != nil {
			return v.fail(err)
		}
		v.loadSync(content, textenc.UTF8(), false)
		return nil
	default:
		return v.loadFile()
	}
}

func (v *Viewer) loadFile() error {
	info, err := os.Stat(v.path)
	if err != nil {
		return v.fail(fmt.Errorf("%w: stat %s: %v", ErrIO, v.path, err))
	}

	if info.Size() > int64(2*v.chunkSize) {
		// Binary content gets a bounded hex preview instead of a chunked
		// decode that would skip every chunk.
		head, err := fs.ReadFileHead(v.path, int64(v.chunkSize))
		if err != nil {
			return v.fail(fmt.Errorf("%w: %s: %v", ErrIO, v.path, err))
		}
		if fs.LooksBinary(v.path, head) {
			content, err := fs.ReadFileHead(v.path, binaryHeadLimit)
			if err != nil {
				return v.fail(fmt.Errorf("%w: %s: %v", ErrIO, v.path, err))
			}
			v.loadBinaryHead(content, info.Size())
			return nil
		}
		v.startBackgroundLoad()
		return nil
	}

	content, err := os.ReadFile(v.path)
	if err != nil {
		return v.fail(fmt.Errorf("%w: %s: %v", ErrIO, v.path, err))
	}

	enc, _ := textenc.Detect(content)
	v.loadSync(content, enc, fs.LooksBinary(v.path, content))
	return nil
}

// loadSync stores the raw buffer and, unless the content is binary or does
// not decode under enc, splits it into cache lines. Binary content keeps its
// encoding unset so Info reports none and Content falls through to the hex
// view.
func (v *Viewer) loadSync(content []byte, enc textenc.Encoding, binary bool) {
	if !binary {
		if text, err := enc.Decode(content); err == nil {
			for _, line := range splitLines(text) {
				v.cache.Append(line)
			}
		}
	}

	v.mu.Lock()
	v.raw = content
	v.rawTotal = int64(len(content))
	if !binary {
		v.enc = enc
		v.encSet = true
	}
	v.state = StateSyncLoaded
	v.mu.Unlock()
}

// loadBinaryHead stores a bounded prefix of a large binary file; Content
// renders it as a hex dump with a not-shown marker for the rest.
func (v *Viewer) loadBinaryHead(content []byte, totalSize int64) {
	v.mu.Lock()
	v.raw = content
	v.rawTotal = totalSize
	v.state = StateSyncLoaded
	v.mu.Unlock()
}

// fail resets partial state and records the error before returning it, so a
// failed session holds no stale buffer or encoding.
func (v *Viewer) fail(err error) error {
	v.mu.Lock()
	v.raw = nil
	v.encSet = false
	v.enc = textenc.Encoding{}
	v.state = StateFailed
	v.loadErr = err
	v.mu.Unlock()
	return err
}

// Line returns the decoded line at index i if it has been written. During a
// background load a false result for a valid index means "not yet available";
// compare i against LineCount and check Status to distinguish.
func (v *Viewer) Line(i int) (string, bool) {
	return v.cache.Line(i)
}

// LineCount returns highest written index + 1, or 0. Monotonically
// non-decreasing; under-reports the final count while loading runs.
func (v *Viewer) LineCount() int {
	return v.cache.Len()
}

// Content reconstructs the whole decoded content. Cached lines win; otherwise
// a raw buffer is decoded directly, and if that fails the hex/ASCII dump is
// returned. ok is false when nothing has been loaded.
func (v *Viewer) Content() (string, bool) {
	if v.cache.Len() > 0 {
		return strings.Join(v.cache.Snapshot(), "\n"), true
	}

	v.mu.Lock()
	raw, total, enc, encSet := v.raw, v.rawTotal, v.enc, v.encSet
	v.mu.Unlock()

	if len(raw) == 0 {
		return "", false
	}
	if encSet && !fs.LooksBinary(v.path, raw) {
		if text, err := enc.Decode(raw); err == nil {
			return text, true
		}
	}

	dump := HexDump(raw, hexBytesPerLine)
	if total > int64(len(raw)) {
		dump += fmt.Sprintf("\n… (%d bytes not shown)", total-int64(len(raw)))
	}
	return dump, true
}

// Info returns the session metadata snapshot.
func (v *Viewer) Info() FileInfo {
	var size int64
	if info, err := os.Stat(v.path); err == nil {
		size = info.Size()
	}

	v.mu.Lock()
	encoding := ""
	if v.encSet {
		encoding = v.enc.Name()
	}
	v.mu.Unlock()

	return FileInfo{
		Name:     filepath.Base(v.path),
		Path:     v.path,
		Kind:     v.kind,
		Size:     size,
		Encoding: encoding,
	}
}

// Status reports the load state and, for StateFailed, the recorded error.
// The consuming layer polls this each refresh; background failures surface
// here rather than being dropped.
func (v *Viewer) Status() (LoadState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.loadErr
}

// Close cancels any background load and waits for its goroutine to exit.
// Safe to call more than once.
func (v *Viewer) Close() {
	v.mu.Lock()
	cancel, done := v.cancel, v.done
	v.cancel = nil
	v.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
