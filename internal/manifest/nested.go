package manifest

import (
	"fmt"
	"strings"
)

// getNestedValue walks a decoded YAML/TOML document along a
// dot-notation field path.
func getNestedValue(obj map[string]any, field string) (any, error) {
	keys := strings.Split(field, ".")
	var current any = obj

	for i, key := range keys {
		value, ok := mapLookup(current, key)
		if !ok {
			return nil, fmt.Errorf("field %q not found (missing %q)", field, strings.Join(keys[:i+1], "."))
		}
		current = value
	}
	return current, nil
}

// setNestedValue replaces the value at a dot-notation field path,
// mutating the document in place. All intermediate maps must already
// exist; it never invents structure.
func setNestedValue(obj map[string]any, field string, value any) error {
	keys := strings.Split(field, ".")
	var current any = obj

	for _, key := range keys[:len(keys)-1] {
		next, ok := mapLookup(current, key)
		if !ok {
			return fmt.Errorf("field %q not found (missing %q)", field, key)
		}
		current = next
	}

	leaf := keys[len(keys)-1]
	if _, ok := mapLookup(current, leaf); !ok {
		return fmt.Errorf("field %q not found", field)
	}
	return mapStore(current, leaf, value)
}

// mapLookup reads a key from either map shape the YAML and TOML
// decoders produce for nested objects.
func mapLookup(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		value, ok := m[key]
		return value, ok
	case map[any]any:
		value, ok := m[key]
		return value, ok
	default:
		return nil, false
	}
}

func mapStore(v any, key string, value any) error {
	switch m := v.(type) {
	case map[string]any:
		m[key] = value
	case map[any]any:
		m[key] = value
	default:
		return fmt.Errorf("cannot set %q: parent is not a map", key)
	}
	return nil
}
