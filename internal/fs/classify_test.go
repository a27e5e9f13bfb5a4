package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestClassifyMissing(t *testing.T) {
	if got := Classify(filepath.Join(t.TempDir(), "absent")); got != KindMissing {
		t.Fatalf("Classify returned %v, want missing", got)
	}
}

func TestClassifyRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Classify(path); got != KindRegular {
		t.Fatalf("Classify returned %v, want file", got)
	}
}

func TestClassifyDirectory(t *testing.T) {
	if got := Classify(t.TempDir()); got != KindDirectory {
		t.Fatalf("Classify returned %v, want directory", got)
	}
}

func TestClassifySymlinkToFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}
	if got := Classify(link); got != KindSymlink {
		t.Fatalf("Classify returned %v, want symlink", got)
	}
}

func TestClassifySymlinkToDirectoryIsDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "dirlink")
	if err := os.Symlink(sub, link); err != nil {
		t.Fatal(err)
	}
	if got := Classify(link); got != KindDirectory {
		t.Fatalf("Classify returned %v, want directory", got)
	}
}

func TestClassifyBrokenSymlinkIsMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "gone"), link); err != nil {
		t.Fatal(err)
	}
	if got := Classify(link); got != KindMissing {
		t.Fatalf("Classify returned %v, want missing", got)
	}
}
