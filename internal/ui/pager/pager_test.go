package pager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fview/internal/viewer"
)

func newTestPager(t *testing.T, v *viewer.Viewer) *Pager {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)
	return &Pager{screen: screen, view: v, width: 40, height: 10}
}

func loadFixture(t *testing.T, content []byte) *viewer.Viewer {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	v := viewer.Open(path)
	if err := v.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(v.Close)
	return v
}

func TestRenderShowsFirstLine(t *testing.T) {
	v := loadFixture(t, []byte("hello\nworld\n"))
	p := newTestPager(t, v)
	p.render()

	sim := p.screen.(tcell.SimulationScreen)
	cells, width, _ := sim.GetContents()
	got := ""
	for x := 0; x < 5; x++ {
		got += string(cells[x].Runes)
	}
	_ = width
	if got != "hello" {
		t.Fatalf("first row renders %q, want hello", got)
	}
}

func TestScrollClamping(t *testing.T) {
	v := loadFixture(t, []byte("a\nb\nc\n"))
	p := newTestPager(t, v)

	p.top = 100
	p.clampScroll(p.visibleRows())
	if p.top != 0 {
		t.Fatalf("top = %d, want 0 (content shorter than window)", p.top)
	}

	p.top = -5
	p.clampScroll(p.visibleRows())
	if p.top != 0 {
		t.Fatalf("top = %d, want 0", p.top)
	}
}

func TestBinaryFallbackLines(t *testing.T) {
	v := loadFixture(t, []byte{0x00, 0x01, 0x02})
	p := newTestPager(t, v)

	if n := p.totalLines(); n != 1 {
		t.Fatalf("totalLines = %d, want 1 hex row", n)
	}
	line, ok := p.lineAt(0)
	if !ok || line[:8] != "00000000" {
		t.Fatalf("lineAt(0) = %q,%v want hex row", line, ok)
	}
	if !p.isBinary() {
		t.Fatalf("expected binary mode")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.size); got != tt.want {
			t.Fatalf("formatSize(%d)=%q want %q", tt.size, got, tt.want)
		}
	}
}
