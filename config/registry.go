package config

import (
	"fmt"
	"sort"
)

// registry holds the named serdes used for lookup and documentation.
var registry = map[string]SerDe{}

// DocEntry is one row of generated serde documentation.
type DocEntry struct {
	Name        string
	Description string
	Example     string
}

// Register adds a serde under a unique name. Registration happens at
// process start; it is not synchronized for concurrent use.
func Register(name string, s SerDe) error {
	if name == "" {
		return fmt.Errorf("serde name must not be empty")
	}
	if s == nil {
		return fmt.Errorf("serde %q must not be nil", name)
	}
	if _, ok := registry[name]; ok {
		return fmt.Errorf("serde %q already registered", name)
	}
	registry[name] = s
	return nil
}

// Lookup returns the serde registered under name.
func Lookup(name string) (SerDe, bool) {
	s, ok := registry[name]
	return s, ok
}

// Docs returns documentation entries for all registered serdes, sorted by
// name for deterministic output.
func Docs() []DocEntry {
	entries := make([]DocEntry, 0, len(registry))
	for name, s := range registry {
		entries = append(entries, DocEntry{
			Name:        name,
			Description: s.Description(),
			Example:     s.Example(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func init() {
	builtins := map[string]SerDe{
		"string":       StringSerDe{},
		"integer-list": IntegerListSerDe{},
		"float-list":   FloatListSerDe{},
		"bool":         BoolSerDe{},
		"duration":     DurationSerDe{},
		"yaml":         YAMLSerDe{},
	}
	for name, s := range builtins {
		if err := Register(name, s); err != nil {
			panic(err)
		}
	}
}
