package viewer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// readDirectoryContent synthesizes pseudo-content for a directory path: the
// immediate child names, NFC-normalized, sorted, one per line. Loading it
// through the regular text path keeps the line/content API uniform across
// files and directories.
func readDirectoryContent(path string) ([]byte, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryRead, path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, norm.NFC.String(entry.Name()))
	}
	sort.Strings(names)

	return []byte(strings.Join(names, "\n")), nil
}
