package viewer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kk-code-lab/fview/internal/textenc"
)

// startBackgroundLoad spawns the chunked decode goroutine for a large file.
// The caller holds no lock; the session must be in StateUnloaded.
func (v *Viewer) startBackgroundLoad() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	v.mu.Lock()
	v.state = StateBackgroundRunning
	v.cancel = cancel
	v.done = done
	v.mu.Unlock()

	go v.backgroundLoad(ctx, done)
}

// backgroundLoad streams the file in chunkSize reads, decodes each chunk
// under the session encoding (detected once, from the first chunk), stitches
// lines across chunk boundaries via the pending tail, and appends completed
// lines to the cache. A chunk whose bytes do not decode is skipped whole:
// its content is lost, the pending tail from before it survives. This is the
// documented lossy edge of the design, not recovered byte-by-byte.
func (v *Viewer) backgroundLoad(ctx context.Context, done chan struct{}) {
	defer close(done)

	f, err := os.Open(v.path)
	if err != nil {
		v.finishBackground(fmt.Errorf("%w: %s: %v", ErrIO, v.path, err))
		return
	}
	defer func() {
		_ = f.Close()
	}()

	var (
		buf       = make([]byte, v.chunkSize)
		enc       textenc.Encoding
		tail      string
		firstText = true
		pendingCR bool
	)

	for chunkIndex := 0; ; chunkIndex++ {
		select {
		case <-ctx.Done():
			// Leave a terminal state so Status stays meaningful on a
			// closed session.
			v.finishBackground(fmt.Errorf("%w: %s", ErrLoadCancelled, v.path))
			return
		default:
		}

		n, readErr := io.ReadFull(f, buf)
		if readErr == io.EOF {
			break
		}
		if readErr != nil && readErr != io.ErrUnexpectedEOF {
			v.finishBackground(fmt.Errorf("%w: %s: %v", ErrIO, v.path, readErr))
			return
		}
		chunk := buf[:n]

		if chunkIndex == 0 {
			detected, _ := textenc.Detect(chunk)
			enc = detected
			v.setEncoding(detected)
		}

		text, decodeErr := enc.Decode(chunk)
		if decodeErr != nil {
			// Skip the whole chunk; a line break boundary is unknowable
			// here, so CR state resets too.
			pendingCR = false
			if readErr == io.ErrUnexpectedEOF {
				break
			}
			continue
		}

		if firstText {
			firstText = false
		} else if pendingCR {
			text = strings.TrimPrefix(text, "\n")
		}
		pendingCR = strings.HasSuffix(text, "\r")

		segments := splitSegments(text)
		segments[0] = tail + segments[0]
		for _, line := range segments[:len(segments)-1] {
			v.cache.Append(line)
		}
		tail = segments[len(segments)-1]

		if readErr == io.ErrUnexpectedEOF {
			break
		}
	}

	if tail != "" {
		v.cache.Append(tail)
	}
	v.finishBackground(nil)
}

func (v *Viewer) setEncoding(enc textenc.Encoding) {
	v.mu.Lock()
	v.enc = enc
	v.encSet = true
	v.mu.Unlock()
}

func (v *Viewer) finishBackground(err error) {
	v.mu.Lock()
	if err != nil {
		v.state = StateFailed
		v.loadErr = err
	} else {
		v.state = StateBackgroundDone
	}
	v.mu.Unlock()
}
