package pdf

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestCanvas_PagesSizedToImages(t *testing.T) {
	dir := t.TempDir()
	sizes := [][2]int{{800, 600}, {600, 800}, {800, 600}}

	c := NewCanvasFactory().NewCanvas()
	for i, s := range sizes {
		path := writePNG(t, dir, "frame-"+string(rune('a'+i))+".png", s[0], s[1])
		c.AddPage(float64(s[0]), float64(s[1]))
		if err := c.DrawImage(path, float64(s[0]), float64(s[1])); err != nil {
			t.Fatalf("DrawImage: %v", err)
		}
	}
	if c.PageCount() != 3 {
		t.Errorf("PageCount() = %d, want 3", c.PageCount())
	}

	out := filepath.Join(dir, "out.pdf")
	if err := c.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 8)])
	}
	if !regexp.MustCompile(`/Count 3\b`).Match(data) {
		t.Error("page tree does not report 3 pages")
	}

	landscape := regexp.MustCompile(`/MediaBox \[0 0 800(\.0+)? 600(\.0+)?\]`)
	portrait := regexp.MustCompile(`/MediaBox \[0 0 600(\.0+)? 800(\.0+)?\]`)
	if n := len(landscape.FindAll(data, -1)); n != 2 {
		t.Errorf("found %d 800x600 pages, want 2", n)
	}
	if n := len(portrait.FindAll(data, -1)); n != 1 {
		t.Errorf("found %d 600x800 pages, want 1", n)
	}
}

func TestCanvas_MissingImage(t *testing.T) {
	c := NewCanvasFactory().NewCanvas()
	c.AddPage(10, 10)
	if err := c.DrawImage(filepath.Join(t.TempDir(), "missing.png"), 10, 10); err == nil {
		t.Error("expected error for missing image")
	}
}
