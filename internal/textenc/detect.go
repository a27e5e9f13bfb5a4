package textenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ConfidenceThreshold is the minimum detector confidence required to accept a
// sniffed charset over the UTF-8 fallback.
const ConfidenceThreshold = 0.7

// Encoding couples a charset name with its decoder. The zero value is invalid;
// use UTF8 or Detect.
type Encoding struct {
	name string
	impl encoding.Encoding
}

// UTF8 returns the fallback encoding.
func UTF8() Encoding {
	return Encoding{name: "UTF-8"}
}

func (e Encoding) Name() string { return e.name }

// Decode converts data to a UTF-8 string, strictly: byte sequences that are
// invalid under the encoding yield an error instead of replacement runes.
// A leading byte-order mark is stripped.
func (e Encoding) Decode(data []byte) (string, error) {
	if e.impl == nil {
		if !utf8.Valid(data) {
			return "", errors.New("invalid UTF-8 sequence")
		}
		return strings.TrimPrefix(string(data), "\uFEFF"), nil
	}

	out, err := e.impl.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", e.name, err)
	}
	text := string(out)
	// x/text decoders substitute U+FFFD rather than failing; treat any
	// substitution as a decode failure so callers can skip the input.
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", fmt.Errorf("decode as %s: invalid byte sequence", e.name)
	}
	return strings.TrimPrefix(text, "\uFEFF"), nil
}

// DetectBOM recognizes UTF-8 and UTF-16 byte-order marks.
func DetectBOM(sample []byte) (Encoding, bool) {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return Encoding{name: "UTF-8", impl: unicode.UTF8BOM}, true
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return Encoding{name: "UTF-16LE", impl: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}, true
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return Encoding{name: "UTF-16BE", impl: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}, true
		}
	}
	return Encoding{}, false
}

// Detect sniffs the charset of sample and reports it with a confidence in
// [0,1]. Results at or below ConfidenceThreshold, unknown charsets, and
// detector errors all fall back to UTF-8.
func Detect(sample []byte) (Encoding, float64) {
	if enc, ok := DetectBOM(sample); ok {
		return enc, 1
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result == nil {
		return UTF8(), 0
	}

	confidence := float64(result.Confidence) / 100
	if confidence <= ConfidenceThreshold {
		return UTF8(), confidence
	}

	enc, ok := resolve(result.Charset)
	if !ok {
		return UTF8(), confidence
	}
	return enc, confidence
}

// Charset labels the detector emits that the IANA and WHATWG indexes do not
// know under that exact spelling.
var charsetAliases = map[string]string{
	"GB-18030": "gb18030",
}

func resolve(name string) (Encoding, bool) {
	if strings.EqualFold(name, "UTF-8") {
		return UTF8(), true
	}
	if alias, ok := charsetAliases[name]; ok {
		name = alias
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return Encoding{name: name, impl: enc}, true
	}
	if enc, err := htmlindex.Get(strings.ToLower(name)); err == nil {
		return Encoding{name: name, impl: enc}, true
	}
	return Encoding{}, false
}
