package viewer

import (
	"strings"
	"testing"
)

func TestHexDumpThreeBytes(t *testing.T) {
	got := HexDump([]byte{0x41, 0x00, 0xFF}, 16)
	want := "00000000  41 00 ff" + strings.Repeat(" ", 40) + "  |A..|"
	if got != want {
		t.Fatalf("HexDump returned %q, want %q", got, want)
	}
}

func TestHexDumpFullRow(t *testing.T) {
	// A full row's hex field is 47 characters (32 digits + 15 separators),
	// right-padded to 48, so a third space precedes the ASCII column.
	data := []byte("0123456789abcdef")
	got := HexDump(data, 16)
	want := "00000000  30 31 32 33 34 35 36 37 38 39 61 62 63 64 65 66   |0123456789abcdef|"
	if got != want {
		t.Fatalf("HexDump returned %q, want %q", got, want)
	}
}

func TestHexDumpMultipleRowsOffsets(t *testing.T) {
	data := make([]byte, 17)
	got := HexDump(data, 16)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "00000000  ") {
		t.Fatalf("first row offset wrong: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "00000010  ") {
		t.Fatalf("second row offset wrong: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "|.|") {
		t.Fatalf("short row ascii column wrong: %q", lines[1])
	}
}

func TestHexDumpEmpty(t *testing.T) {
	if got := HexDump(nil, 16); got != "" {
		t.Fatalf("HexDump(nil) = %q, want empty", got)
	}
}
