package fs

import "os"

// Kind classifies a filesystem path for the loader.
type Kind int

const (
	KindMissing Kind = iota
	KindDirectory
	KindSymlink
	KindRegular
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindRegular:
		return "file"
	default:
		return "missing"
	}
}

// Classify reports what kind of path this is. A symlink whose target is a
// directory classifies as a directory so it can be listed; a broken symlink
// classifies as missing.
func Classify(path string) Kind {
	info, err := os.Stat(path)
	if err != nil {
		return KindMissing
	}
	if info.IsDir() {
		return KindDirectory
	}
	if linkInfo, err := os.Lstat(path); err == nil && linkInfo.Mode()&os.ModeSymlink != 0 {
		return KindSymlink
	}
	return KindRegular
}
