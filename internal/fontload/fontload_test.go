package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseGoRegular(t *testing.T) {
	f, err := ParseOpenTypeFont(goregular.TTF, 0)
	if err != nil {
		t.Fatalf("cannot parse Go Regular: %v", err)
	}
	if f.Fontname != "Go Regular" {
		t.Fatalf("font name=%q, want %q", f.Fontname, "Go Regular")
	}
	if f.SFNT == nil || f.SFNT.NumGlyphs() == 0 {
		t.Fatalf("expected SFNT view with glyphs")
	}
}

func TestParseRejectsFaceIndexForSingleFont(t *testing.T) {
	if _, err := ParseOpenTypeFont(goregular.TTF, 1); err == nil {
		t.Fatalf("expected error for face index 1 of a single font")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseOpenTypeFont([]byte("not a font at all"), 0); err == nil {
		t.Fatalf("expected error for garbage input")
	}
	if _, err := ParseOpenTypeFont([]byte("ttcf\x00\x01"), 0); err == nil {
		t.Fatalf("expected error for truncated collection")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadOpenTypeFont(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f.Filepath != path {
		t.Fatalf("file path=%q, want %q", f.Filepath, path)
	}
	if _, err := LoadOpenTypeFont(filepath.Join(t.TempDir(), "missing.ttf"), 0); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestIsCollection(t *testing.T) {
	if IsCollection(goregular.TTF) {
		t.Fatalf("Go Regular is not a collection")
	}
	if !IsCollection([]byte("ttcf....")) {
		t.Fatalf("expected ttcf magic to be recognized")
	}
}
