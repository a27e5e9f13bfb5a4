package viewer

import (
	"fmt"
	"strings"
)

const hexBytesPerLine = 16

// HexDump renders data as the classic offset / hex / ASCII triplet view used
// when content cannot be decoded as text:
//
//	00000000  68 65 6c 6c 6f 0a ...                   |hello....|
//
// Each row carries an 8-digit zero-padded hex offset, two spaces, the bytes
// as lowercase hex pairs separated by single spaces padded to a fixed
// bytesPerLine*3 column, two spaces, and a pipe-delimited ASCII column where
// printable bytes render literally and everything else as '.'.
func HexDump(data []byte, bytesPerLine int) string {
	if bytesPerLine <= 0 {
		bytesPerLine = hexBytesPerLine
	}
	if len(data) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(data) * 4)

	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		if offset > 0 {
			builder.WriteByte('\n')
		}
		writeHexRow(&builder, offset, data[offset:end], bytesPerLine)
	}

	return builder.String()
}

func writeHexRow(builder *strings.Builder, offset int, chunk []byte, bytesPerLine int) {
	fmt.Fprintf(builder, "%08x  ", offset)

	width := 0
	for i, b := range chunk {
		if i > 0 {
			builder.WriteByte(' ')
			width++
		}
		fmt.Fprintf(builder, "%02x", b)
		width += 2
	}
	for ; width < bytesPerLine*3; width++ {
		builder.WriteByte(' ')
	}

	builder.WriteString("  |")
	for _, b := range chunk {
		if b >= 0x20 && b <= 0x7e {
			builder.WriteByte(b)
		} else {
			builder.WriteByte('.')
		}
	}
	builder.WriteByte('|')
}
