package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from the file extension. Unknown extensions
// are treated as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// decodeFragment decodes data in the given format. A document that is
// empty, blank or null yields a nil Fragment and no error.
func decodeFragment(format Format, data []byte) (Fragment, error) {
	var raw map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("error decoding toml: %w", err)
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		// Unmarshal rejects trailing data after the first value.
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("error decoding json: %w", err)
		}
	}

	if raw == nil {
		return nil, nil
	}

	n, err := normalizeMap(raw)
	if err != nil {
		return nil, fmt.Errorf("error normalizing %s document: %w", format, err)
	}

	return n, nil
}

// EncodeJSON writes f as indented JSON with sorted keys.
func EncodeJSON(f Fragment) ([]byte, error) {
	out, err := json.MarshalIndent(map[string]any(f), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding json: %w", err)
	}

	return append(out, '\n'), nil
}

// EncodeYAML writes f as YAML with sorted keys.
func EncodeYAML(f Fragment) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(f)); err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}

	return buf.Bytes(), nil
}
