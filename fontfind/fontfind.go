// Package fontfind resolves a font family name or font file path to a
// stable identity and the raw font program bytes. It is a thin wrapper
// over the conventional system font directories; the profiling core
// only ever sees its output.
package fontfind

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// Font is a resolved font: an identity that names its cache entry and
// the font program bytes to profile. The identity comes from the
// font's own full-name table entry when available, so two different
// fonts do not collide on a shared file name.
type Font struct {
	Name string
	Data []byte
}

// Resolve returns the font matching the given family name. An
// existing .ttf or .otf file path is used directly. When no installed
// font matches, or the family is empty, the first usable font found is
// returned instead; an error means no font could be located at all.
func Resolve(family string) (*Font, error) {
	if family != "" {
		if info, err := os.Stat(family); err == nil && !info.IsDir() {
			return loadFile(family)
		}
	}

	want := strings.ToLower(family)
	var fallback string
	for _, dir := range fontDirs() {
		match := ""
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !usableExt(path) {
				return nil
			}
			if fallback == "" {
				fallback = path
			}
			if want == "" || matchesFamily(path, want) {
				match = path
				return fs.SkipAll
			}
			return nil
		})
		if match != "" {
			return loadFile(match)
		}
	}

	if fallback != "" {
		return loadFile(fallback)
	}
	return nil, fmt.Errorf("no usable font found for %q", family)
}

// fontDirs lists conventional font locations, most specific first.
func fontDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		)
	}
	return append(dirs,
		"/usr/local/share/fonts",
		"/usr/share/fonts",
		"/System/Library/Fonts",
		"/Library/Fonts",
		`C:\Windows\Fonts`,
	)
}

// usableExt reports whether the path names a single-face font program.
// Collections (.ttc) are skipped: only the first face of a file is
// supported and the profilers do not parse collections.
func usableExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// matchesFamily reports whether the font at path belongs to the wanted
// family. The file name is checked first to avoid parsing every font
// on the system; the name table decides otherwise.
func matchesFamily(path, want string) bool {
	base := strings.ToLower(filepath.Base(path))
	if strings.Contains(base, strings.ReplaceAll(want, " ", "")) {
		return true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(fontName(data)), want)
}

func loadFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	name := fontName(data)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &Font{Name: name, Data: data}, nil
}

// fontName reads the full-name entry of the font's name table, or ""
// if the bytes do not parse as an sfnt font.
func fontName(data []byte) string {
	f, err := sfnt.Parse(data)
	if err != nil {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}
