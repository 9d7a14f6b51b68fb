// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding/json"
	"math"
)

// Settings is the resolved configuration handed to the runtime host.
//
// It is immutable: the underlying mapping is private and every accessor
// returns a copy, so values read from Settings can be changed freely
// without affecting it. The zero value is an empty Settings.
type Settings struct {
	values Fragment
}

// newSettings takes a private copy of f.
func newSettings(f Fragment) Settings {
	return Settings{values: f.Clone()}
}

// Get returns a copy of the value at the given key path, e.g.
// Get("editorTheme", "page", "title").
func (s Settings) Get(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	var cur any = map[string]any(s.values)
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}

		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return cloneValue(cur), true
}

// Has reports whether a value (possibly nil) is set at the key path.
func (s Settings) Has(path ...string) bool {
	_, ok := s.Get(path...)
	return ok
}

// String returns the string at the key path.
func (s Settings) String(path ...string) (string, bool) {
	v, ok := s.Get(path...)
	if !ok {
		return "", false
	}

	str, ok := v.(string)
	return str, ok
}

// Bool returns the boolean at the key path.
func (s Settings) Bool(path ...string) (bool, bool) {
	v, ok := s.Get(path...)
	if !ok {
		return false, false
	}

	b, ok := v.(bool)
	return b, ok
}

// Int returns the integer at the key path. Integral floats, as produced by
// JSON decoding, are accepted.
func (s Settings) Int(path ...string) (int, bool) {
	v, ok := s.Get(path...)
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// AdminUsers returns the admin access list.
func (s Settings) AdminUsers() ([]UserRecord, error) {
	v, _ := s.Get("adminAuth", "users")
	return usersFromValue(v)
}

// Keys returns the top-level keys in sorted order.
func (s Settings) Keys() []string {
	return s.values.Keys()
}

// Map returns a deep copy of the whole settings mapping.
func (s Settings) Map() Fragment {
	if s.values == nil {
		return Fragment{}
	}

	return s.values.Clone()
}

// MarshalJSON encodes the settings as a JSON object.
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(s.Map()))
}

// MarshalYAML encodes the settings as a YAML mapping.
func (s Settings) MarshalYAML() (any, error) {
	return map[string]any(s.Map()), nil
}
