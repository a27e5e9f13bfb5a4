package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// ExpandTabs replaces tabs with spaces up to the next tab stop, tracking the
// terminal column of preceding runes.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + tabWidth)
	column := 0
	for _, r := range text {
		if r == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			column += spaces
			continue
		}
		b.WriteRune(r)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		column += w
	}
	return b.String()
}

// DisplayWidth reports the printable width of text. Grapheme clusters (emoji
// sequences, flags, keycaps) count as a single cell pair.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
