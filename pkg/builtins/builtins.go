// Package builtins exposes the built-in function names of the filter
// language. The name list is data, not code: it is loaded from an embedded
// JSON resource so it can be regenerated without touching the classifier.
package builtins

import (
	"encoding/json"
	"sort"

	"gitlab.com/tozd/go/errors"

	_ "embed"
)

//go:embed builtins.json
var builtinsJSON []byte

type builtinEntry struct {
	Name string `json:"name"`
	Doc  string `json:"doc,omitempty"`
}

var (
	entries []builtinEntry
	byName  map[string]builtinEntry
)

func init() {
	loaded, index, err := load(builtinsJSON)
	if err != nil {
		panic(err)
	}
	entries = loaded
	byName = index
}

func load(data []byte) ([]builtinEntry, map[string]builtinEntry, error) {
	var loaded []builtinEntry
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, nil, errors.Errorf("failed to parse builtins resource: %w", err)
	}

	index := make(map[string]builtinEntry, len(loaded))
	for _, e := range loaded {
		if e.Name == "" {
			return nil, nil, errors.New("builtins resource contains an entry with no name")
		}
		index[e.Name] = e
	}
	return loaded, index, nil
}

// Names returns all built-in function names in a stable sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Is reports whether name is a built-in function.
func Is(name string) bool {
	_, ok := byName[name]
	return ok
}

// Doc returns the short documentation string for a built-in, if any.
func Doc(name string) (string, bool) {
	e, ok := byName[name]
	if !ok || e.Doc == "" {
		return "", false
	}
	return e.Doc, true
}
