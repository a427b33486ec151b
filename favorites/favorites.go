// Package favorites persists the set of font families a user has marked as
// favorites. The set is stored as a sorted JSON array of family names in the
// user's configuration directory and rewritten wholesale on every change.
package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the tracer with key 'fontpreview'
func tracer() tracing.Trace {
	return tracing.Select("fontpreview")
}

// Set holds the family names marked as favorites.
type Set map[string]struct{}

// NewSet creates a favorites set from a list of family names.
func NewSet(families ...string) Set {
	s := make(Set)
	for _, family := range families {
		s[family] = struct{}{}
	}
	return s
}

// Has reports whether a family is marked as favorite.
func (s Set) Has(family string) bool {
	_, ok := s[family]
	return ok
}

// Toggle marks an unmarked family as favorite, or removes the mark from a
// marked one.
func (s Set) Toggle(family string) {
	if s.Has(family) {
		delete(s, family)
		return
	}
	s[family] = struct{}{}
}

// Families returns the favorited family names in sorted order.
func (s Set) Families() []string {
	families := make([]string, 0, len(s))
	for family := range s {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// Store reads and writes a favorites set at a fixed location.
type Store struct {
	Path string // storage location, empty selects DefaultPath
}

// DefaultPath locates the favorites file inside the user's configuration
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fontpreview", "favorites.json"), nil
}

func (st Store) location() (string, error) {
	if st.Path != "" {
		return st.Path, nil
	}
	return DefaultPath()
}

// Load reads the persisted favorites set. A missing file, an undetermined
// config directory and corrupt content all degrade to an empty set.
func (st Store) Load() Set {
	path, err := st.location()
	if err != nil {
		tracer().Debugf("favorites location undetermined: %v", err)
		return NewSet()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		tracer().Debugf("favorites not loaded: %v", err)
		return NewSet()
	}
	var families []string
	if err := json.Unmarshal(data, &families); err != nil {
		tracer().Errorf("favorites file corrupt, starting empty: %v", err)
		return NewSet()
	}
	return NewSet(families...)
}

// Save writes the complete favorites set as a sorted JSON array, creating
// the storage directory if necessary.
func (st Store) Save(s Set) error {
	path, err := st.location()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Families(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
