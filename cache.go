package ascii

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Cache persists one brightness profile per font identity as a JSON
// file under its root directory, so a font's whole character set is
// rasterized at most once per machine. Loads are all-or-nothing and
// stores always rewrite the file completely.
type Cache struct {
	root string
}

// NewCache returns a cache rooted at the given directory. The
// directory does not need to exist yet; Store creates it on demand and
// every operation tolerates a freshly cleared root.
func NewCache(root string) *Cache {
	return &Cache{root: root}
}

// Path returns the cache file backing the given font identity. Path
// separators in the identity are flattened so the file always lands
// directly under the root, whatever the font's name table contains.
func (c *Cache) Path(name string) string {
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	return filepath.Join(c.root, name+".json")
}

// Load reads the stored profile for a font identity. A missing file is
// reported as ok=false with a nil error. A file that exists but does
// not parse is deleted before reporting ok=false, so a corrupt entry
// never survives a lookup.
func (c *Cache) Load(name string) (profile Profile, ok bool, err error) {
	path := c.Path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading profile cache: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		if err := os.Remove(path); err != nil {
			return nil, false, fmt.Errorf("removing corrupt profile cache: %w", err)
		}
		return nil, false, nil
	}
	return profile, true, nil
}

// Store writes the profile for a font identity, creating the cache
// root first if needed. A previous file for the same identity is fully
// overwritten.
func (c *Cache) Store(name string, profile Profile) error {
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return fmt.Errorf("creating profile cache directory: %w", err)
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(c.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("writing profile cache: %w", err)
	}
	return nil
}

// Clear deletes the entire cache root.
func (c *Cache) Clear() error {
	if err := os.RemoveAll(c.root); err != nil {
		return fmt.Errorf("clearing profile cache: %w", err)
	}
	return nil
}
