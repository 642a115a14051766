package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func TestLocal_ListTIFF(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b_1_f0_x.TIF")
	touch(t, dir, "a.tiff")
	touch(t, dir, "c.TiFf")
	touch(t, dir, "readme.txt")
	touch(t, dir, "scan.tif.pdf")
	if err := os.MkdirAll(filepath.Join(dir, "_out", "nested.tif"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "_out"), "old.tif")

	files, err := NewLocal().ListTIFF(dir)
	if err != nil {
		t.Fatalf("ListTIFF: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		if f.Path != filepath.Join(dir, f.Name) {
			t.Errorf("Path = %q, want %q", f.Path, filepath.Join(dir, f.Name))
		}
	}
	want := []string{"a.tiff", "b_1_f0_x.TIF", "c.TiFf"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("ListTIFF mismatch (-want +got):\n%s", diff)
	}
}

func TestLocal_ListTIFF_Empty(t *testing.T) {
	files, err := NewLocal().ListTIFF(t.TempDir())
	if err != nil {
		t.Fatalf("ListTIFF: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestLocal_ListTIFF_MissingDir(t *testing.T) {
	_, err := NewLocal().ListTIFF(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLocal_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "_out")
	l := NewLocal()

	created, err := l.EnsureDir(dir)
	if err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if !created {
		t.Error("first EnsureDir should report created")
	}

	created, err = l.EnsureDir(dir)
	if err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
	if created {
		t.Error("second EnsureDir should not report created")
	}
}

func TestLocal_EnsureDir_File(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "_out")
	if _, err := NewLocal().EnsureDir(filepath.Join(dir, "_out")); err == nil {
		t.Error("expected error when output path is a file")
	}
}

func TestLocal_Remove(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x.pdf")
	l := NewLocal()

	if err := l.Remove(filepath.Join(dir, "x.pdf")); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if FileExists(filepath.Join(dir, "x.pdf")) {
		t.Error("file still exists after Remove")
	}
	if err := l.Remove(filepath.Join(dir, "x.pdf")); err != nil {
		t.Errorf("Remove of missing file: %v", err)
	}
}
