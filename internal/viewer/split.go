package viewer

import "strings"

// splitSegments splits text on \r\n, \n, and \r. The final segment is always
// present and may be empty: a chunk ending exactly on a line break yields an
// empty last segment, which is what lets the chunked loader carry it as a
// pending tail without re-emitting the line before the break.
func splitSegments(text string) []string {
	segments := make([]string, 0, strings.Count(text, "\n")+2)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			segments = append(segments, text[start:i])
			start = i + 1
		case '\r':
			segments = append(segments, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(segments, text[start:])
}

// splitLines splits complete text into display lines: like splitSegments but
// without the empty segment a trailing line break would otherwise produce, so
// "a\nb\n" is two lines, matching what the chunked path emits for the same
// bytes.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	segments := splitSegments(text)
	if last := len(segments) - 1; segments[last] == "" {
		segments = segments[:last]
	}
	return segments
}
