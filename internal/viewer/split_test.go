package viewer

import (
	"reflect"
	"testing"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"no break", "abc", []string{"abc"}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"trailing lf keeps empty tail", "a\nb\n", []string{"a", "b", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b", ""}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"consecutive breaks", "a\n\nb", []string{"a", "", "b"}},
		{"trailing cr", "abc\r", []string{"abc", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitSegments(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("splitSegments(%q)=%q want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line no break", "abc", []string{"abc"}},
		{"trailing lf dropped", "a\nb\n", []string{"a", "b"}},
		{"lone lf is one empty line", "\n", []string{""}},
		{"blank line preserved", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("splitLines(%q)=%q want %q", tt.text, got, tt.want)
			}
		})
	}
}
