// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"maps"
	"slices"
)

// Fragment is a partial, possibly nested configuration mapping contributed
// by one source. Nested mappings are map[string]any, lists are []any.
type Fragment map[string]any

// Merge returns a new Fragment holding base with override applied on top.
//
// For every key present in both, nested mappings are merged recursively
// at any depth; any other override value (scalars, lists, nil) replaces the
// base value entirely. Lists are never concatenated. Neither input is
// modified and the result shares no mutable state with them.
func Merge(base, override Fragment) Fragment {
	return mergeMaps(base, override)
}

func mergeMaps(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		result[k] = cloneValue(v)
	}

	for k, v := range override {
		baseMap, baseOK := asMap(result[k])
		overMap, overOK := asMap(v)
		if baseOK && overOK {
			result[k] = mergeMaps(baseMap, overMap)
			continue
		}
		result[k] = cloneValue(v)
	}

	return result
}

// Clone returns a deep copy of f.
func (f Fragment) Clone() Fragment {
	if f == nil {
		return nil
	}

	return cloneMap(f)
}

// Keys returns the top-level keys of f in sorted order.
func (f Fragment) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Fragment:
		return cloneMap(val)
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(val)
	default:
		return val
	}
}

func asMap(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case Fragment:
		return val, true
	case map[string]any:
		return val, true
	default:
		return nil, false
	}
}

// normalize converts decoder output into the Fragment value model: every
// mapping becomes map[string]any and every list becomes []any.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case Fragment:
		return normalizeMap(val)
	case map[string]any:
		return normalizeMap(val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v (%T)", k, k)
			}
			m[key] = item
		}
		return normalizeMap(m)
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := normalizeMap(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return val, nil
	}
}

func normalizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, item := range m {
		n, err := normalize(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = n
	}

	return out, nil
}
