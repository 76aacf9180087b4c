package adapter

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"

	m "beanlint.dev/pkg/beanlint/internal/model"
)

// FactoriesAdapter loads registration entries from a mapping file so the
// factory validator stays independent of the on-disk properties syntax.
type FactoriesAdapter interface {
	// Load parses the mapping file at path and returns the entries for the
	// well-known registration keys, in key order. Keys absent from the file
	// are skipped.
	Load(path m.Path) ([]m.Registration, error)
}

// LocalFactoriesAdapter parses Java properties files (spring.factories
// syntax: backslash line continuations, '='/':' separators).
type LocalFactoriesAdapter struct{}

// NewLocalFactoriesAdapter constructs a LocalFactoriesAdapter.
func NewLocalFactoriesAdapter() *LocalFactoriesAdapter {
	return &LocalFactoriesAdapter{}
}

// Load reads the mapping file and splits each registered value on commas.
func (a *LocalFactoriesAdapter) Load(path m.Path) ([]m.Registration, error) {
	// Expansion is disabled: class names are literal, and '$' occurs in
	// inner-class names.
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}

	props, err := loader.LoadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("load mapping file %s: %w", path, err)
	}

	var entries []m.Registration

	for _, key := range m.RegistrationKeys {
		value, ok := props.Get(key)
		if !ok {
			continue
		}

		entries = append(entries, m.Registration{
			Key:     key,
			Classes: splitClassList(value),
		})
	}

	return entries, nil
}

// splitClassList splits a comma-separated class list, trimming whitespace and
// dropping empty items left by trailing commas.
func splitClassList(value string) []string {
	var classes []string

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		classes = append(classes, item)
	}

	return classes
}
