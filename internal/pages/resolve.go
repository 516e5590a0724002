package pages

import (
	"encoding/json"
	"fmt"
)

// Resolve overlays a loaded document onto a page's default content.
// Objects merge key by key, arrays and scalars from the document replace the
// default, and null or missing keys keep the default. A nil document returns
// def unchanged. On a shape mismatch def is returned with the error.
func Resolve[T any](doc any, def T) (T, error) {
	if doc == nil {
		return def, nil
	}
	overlay, ok := doc.(map[string]any)
	if !ok {
		return def, fmt.Errorf("resolve %T: expected object, got %T", def, doc)
	}

	base, err := toObject(def)
	if err != nil {
		return def, err
	}

	raw, err := json.Marshal(merge(base, overlay))
	if err != nil {
		return def, fmt.Errorf("resolve %T: %w", def, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def, fmt.Errorf("resolve %T: %w", def, err)
	}
	return out, nil
}

// ResolveList decodes a collection. An empty or absent collection keeps the
// default list. Both bare arrays and {"items": [...]} indexes are accepted.
func ResolveList[T any](doc any, def []T) ([]T, error) {
	if m, ok := doc.(map[string]any); ok {
		doc = m["items"]
	}
	items, ok := doc.([]any)
	if doc != nil && !ok {
		return def, fmt.Errorf("resolve []%T: expected array, got %T", *new(T), doc)
	}
	if len(items) == 0 {
		return def, nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return def, fmt.Errorf("resolve []%T: %w", *new(T), err)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def, fmt.Errorf("resolve []%T: %w", *new(T), err)
	}
	return out, nil
}

func toObject(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode default %T: %w", v, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode default %T: %w", v, err)
	}
	return m, nil
}

func merge(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if v == nil {
			continue
		}
		if ov, ok := v.(map[string]any); ok {
			if bv, ok := out[k].(map[string]any); ok {
				out[k] = merge(bv, ov)
				continue
			}
		}
		out[k] = v
	}
	return out
}
