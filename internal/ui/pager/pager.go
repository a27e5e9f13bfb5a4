package pager

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fview/internal/viewer"
)

// refreshInterval drives redraws while a background load is still filling the
// line cache, so the count and position indicator keep moving.
const refreshInterval = 100 * time.Millisecond

// Pager is a full-screen reader over one viewer session. It owns no loader
// state: every refresh re-reads LineCount and Status, so a session that is
// still decoding in the background simply grows on screen.
type Pager struct {
	screen tcell.Screen
	view   *viewer.Viewer

	top    int
	width  int
	height int

	// hex fallback lines, fetched once the session settles with no
	// decoded lines
	binary      []string
	binaryReady bool

	quit bool
}

// New initializes a screen for the given session.
func New(v *viewer.Viewer) (*Pager, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	p := &Pager{screen: screen, view: v}
	p.width, p.height = screen.Size()
	return p, nil
}

// Run drives the event loop until the user quits. The screen is finalized on
// return.
func (p *Pager) Run() error {
	defer p.screen.Fini()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	p.render()
	for !p.quit {
		select {
		case ev := <-eventChan:
			p.handleEvent(ev)
		case <-ticker.C:
			state, _ := p.view.Status()
			if !state.Loading() {
				continue
			}
		}
		p.render()
	}
	return nil
}

func (p *Pager) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.width, p.height = ev.Size()
		p.screen.Sync()
	case *tcell.EventKey:
		p.handleKey(ev)
	}
}

func (p *Pager) handleKey(ev *tcell.EventKey) {
	visible := p.visibleRows()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.quit = true
	case tcell.KeyUp:
		p.top--
	case tcell.KeyDown:
		p.top++
	case tcell.KeyPgUp:
		p.top -= visible
	case tcell.KeyPgDn:
		p.top += visible
	case tcell.KeyHome:
		p.top = 0
	case tcell.KeyEnd:
		p.top = p.totalLines()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			p.quit = true
		case 'k':
			p.top--
		case 'j':
			p.top++
		case 'b':
			p.top -= visible
		case ' ', 'f':
			p.top += visible
		case 'g':
			p.top = 0
		case 'G':
			p.top = p.totalLines()
		}
	}
	p.clampScroll(visible)
}

func (p *Pager) clampScroll(visible int) {
	max := p.totalLines() - visible
	if p.top > max {
		p.top = max
	}
	if p.top < 0 {
		p.top = 0
	}
}

func (p *Pager) visibleRows() int {
	if p.height <= 1 {
		return 1
	}
	return p.height - 1
}

// totalLines reports how many lines can currently be displayed: decoded cache
// lines, or the hex dump rows once the session settled without any.
func (p *Pager) totalLines() int {
	if n := p.view.LineCount(); n > 0 {
		return n
	}
	p.ensureBinary()
	return len(p.binary)
}

// ensureBinary fetches the hex fallback once the load is finished and no text
// lines exist. Never done while a background load could still produce lines.
func (p *Pager) ensureBinary() {
	if p.binaryReady {
		return
	}
	state, _ := p.view.Status()
	if state != viewer.StateSyncLoaded && state != viewer.StateBackgroundDone {
		return
	}
	if p.view.LineCount() > 0 {
		return
	}
	if content, ok := p.view.Content(); ok && content != "" {
		p.binary = strings.Split(content, "\n")
	}
	p.binaryReady = true
}

// lineAt returns the display text for a line index, from the cache or the hex
// fallback.
func (p *Pager) lineAt(i int) (string, bool) {
	if p.view.LineCount() > 0 {
		return p.view.Line(i)
	}
	if i >= 0 && i < len(p.binary) {
		return p.binary[i], true
	}
	return "", false
}

func (p *Pager) isBinary() bool {
	return p.view.LineCount() == 0 && len(p.binary) > 0
}
