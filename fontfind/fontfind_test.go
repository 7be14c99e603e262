package fontfind

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveExplicitPath(t *testing.T) {
	// Any readable file resolves when named directly; the identity
	// falls back to the file name when the bytes have no name table.
	path := filepath.Join(t.TempDir(), "My Font.ttf")
	data := []byte("not really a font, but resolvable")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	font, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if font.Name != "My Font" {
		t.Errorf("expected identity \"My Font\", got %q", font.Name)
	}
	if string(font.Data) != string(data) {
		t.Error("resolved bytes do not match the file")
	}
}

func TestFontNameOfGarbageIsEmpty(t *testing.T) {
	if name := fontName([]byte("garbage")); name != "" {
		t.Errorf("expected empty name for unparsable bytes, got %q", name)
	}
}

func TestUsableExt(t *testing.T) {
	cases := map[string]bool{
		"a.ttf": true,
		"B.TTF": true,
		"c.otf": true,
		"d.ttc": false,
		"e.txt": false,
		"f":     false,
	}
	for path, want := range cases {
		if got := usableExt(path); got != want {
			t.Errorf("usableExt(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestMatchesFamilyByFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DejaVuSansMono.ttf")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !matchesFamily(path, "dejavu sans") {
		t.Error("file name should satisfy a family match")
	}
	if matchesFamily(path, "comic sans") {
		t.Error("unrelated family must not match")
	}
}
