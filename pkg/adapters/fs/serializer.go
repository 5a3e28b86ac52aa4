package fs

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Supported on-disk formats. The stores always speak canonical JSON blobs;
// the format only decides how that blob is represented in the file, so a
// YAML data directory stays hand-editable without the domain knowing.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func validFormat(format string) bool {
	return format == FormatJSON || format == FormatYAML
}

func extFor(format string) string {
	// Format names double as file extensions.
	return format
}

// encode converts a canonical JSON blob to its on-disk representation.
func encode(format string, data []byte) ([]byte, error) {
	switch format {
	case FormatJSON:
		// Pretty-print for diff-friendliness; the content is unchanged.
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid json blob: %w", err)
		}
		return json.MarshalIndent(v, "", "  ")

	case FormatYAML:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid json blob: %w", err)
		}
		return yaml.Marshal(v)

	default:
		return nil, fmt.Errorf("unknown storage format: %q", format)
	}
}

// decode converts an on-disk representation back to a canonical JSON blob.
func decode(format string, raw []byte) ([]byte, error) {
	switch format {
	case FormatJSON:
		if !json.Valid(raw) {
			return nil, fmt.Errorf("invalid json")
		}
		return raw, nil

	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
		return json.Marshal(v)

	default:
		return nil, fmt.Errorf("unknown storage format: %q", format)
	}
}
