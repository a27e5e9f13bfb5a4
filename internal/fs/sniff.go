package fs

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/fview/internal/textenc"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

var binaryExtensions = map[string]struct{}{
	".7z":    {},
	".apk":   {},
	".avi":   {},
	".bin":   {},
	".bmp":   {},
	".bz2":   {},
	".class": {},
	".dat":   {},
	".dll":   {},
	".doc":   {},
	".docx":  {},
	".dylib": {},
	".exe":   {},
	".flac":  {},
	".gif":   {},
	".gz":    {},
	".ico":   {},
	".iso":   {},
	".jar":   {},
	".jpeg":  {},
	".jpg":   {},
	".mkv":   {},
	".mov":   {},
	".mp3":   {},
	".mp4":   {},
	".ogg":   {},
	".otf":   {},
	".pdf":   {},
	".png":   {},
	".ppt":   {},
	".pptx":  {},
	".psd":   {},
	".so":    {},
	".tar":   {},
	".tgz":   {},
	".ttf":   {},
	".wav":   {},
	".wasm":  {},
	".woff":  {},
	".woff2": {},
	".xls":   {},
	".xlsx":  {},
	".xz":    {},
	".zip":   {},
}

// LooksBinary reports whether content should skip text decoding and go
// straight to the hex view. The path (if provided) short-circuits obvious
// binary extensions before sniffing the bytes.
func LooksBinary(path string, content []byte) bool {
	if binaryByExtension(path) {
		return true
	}

	if len(content) == 0 {
		return false
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	if _, ok := textenc.DetectBOM(sample); ok {
		return false
	}

	if bytes.IndexByte(sample, 0x00) != -1 {
		return true
	}

	if utf8.Valid(sample) {
		return false
	}

	printable := 0
	nonPrintable := 0
	for _, b := range sample {
		if isCommonTextByte(b) {
			printable++
		} else {
			nonPrintable++
		}
	}

	if printable == 0 {
		return true
	}

	return nonPrintable*100/len(sample) >= nonPrintableThresholdPercent
}

func binaryByExtension(path string) bool {
	if path == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := binaryExtensions[ext]
	return ok
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}
