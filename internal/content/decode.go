package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// decode parses a document body, choosing the codec from the path extension.
// JSON numbers are kept as float64 and objects as map[string]any in both codecs.
func decode(p string, body []byte) (any, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return normalizeYAML(v), nil
	default:
		var v any
		dec := json.NewDecoder(bytes.NewReader(body))
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("decode json: trailing data after document")
		}
		return v, nil
	}
}

// normalizeYAML converts yaml.v3 scalars into the shapes encoding/json produces
// so callers see one representation regardless of source format.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		for i := range t {
			t[i] = normalizeYAML(t[i])
		}
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}
