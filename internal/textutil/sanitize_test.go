package textutil

import "testing"

func TestSanitizeLinePassthrough(t *testing.T) {
	in := "plain text with\ttab"
	if got := SanitizeLine(in); got != in {
		t.Fatalf("SanitizeLine changed clean input: %q", got)
	}
}

func TestSanitizeLineControlBytes(t *testing.T) {
	got := SanitizeLine("a\x1b[31mred\x00b")
	want := "a?[31mred?b"
	if got != want {
		t.Fatalf("SanitizeLine returned %q, want %q", got, want)
	}
}

func TestSanitizeLineFormattingRunes(t *testing.T) {
	got := SanitizeLine("user‮admin")
	want := "user⟪RLO⟫admin"
	if got != want {
		t.Fatalf("SanitizeLine returned %q, want %q", got, want)
	}
}

func TestSanitizeLineStrayBreaks(t *testing.T) {
	if got := SanitizeLine("a\rb\nc"); got != "a b c" {
		t.Fatalf("SanitizeLine returned %q, want %q", got, "a b c")
	}
}
