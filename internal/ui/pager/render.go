package pager

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/fview/internal/textutil"
	"github.com/kk-code-lab/fview/internal/viewer"
)

func (p *Pager) render() {
	p.screen.Clear()

	visible := p.visibleRows()
	total := p.totalLines()
	binary := p.isBinary()

	for row := 0; row < visible; row++ {
		idx := p.top + row
		if idx >= total {
			break
		}
		line, ok := p.lineAt(idx)
		if !ok {
			continue
		}
		if !binary {
			line = textutil.ExpandTabs(textutil.SanitizeLine(line), textutil.DefaultTabWidth)
		}
		p.drawText(0, row, line, tcell.StyleDefault)
	}

	p.drawStatus(total, visible)
	p.screen.Show()
}

func (p *Pager) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= p.width {
			break
		}
		p.screen.SetContent(col, y, r, nil, style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		col += w
	}
}

func (p *Pager) drawStatus(total, visible int) {
	if p.height < 1 {
		return
	}

	info := p.view.Info()
	state, loadErr := p.view.Status()

	parts := []string{
		info.Name,
		info.Kind.String(),
		formatSize(info.Size),
	}
	if info.Encoding != "" {
		parts = append(parts, info.Encoding)
	}
	if total > 0 {
		first := p.top + 1
		last := p.top + visible
		if last > total {
			last = total
		}
		parts = append(parts, fmt.Sprintf("%d-%d/%d", first, last, total))
	}
	switch {
	case state == viewer.StateFailed && loadErr != nil:
		parts = append(parts, "failed: "+loadErr.Error())
	case state.Loading():
		parts = append(parts, "loading…")
	}

	text := " " + strings.Join(parts, "  ·  ")
	if pad := p.width - textutil.DisplayWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	style := tcell.StyleDefault.Reverse(true)
	p.drawText(0, p.height-1, text, style)
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
