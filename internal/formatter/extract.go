package formatter

import (
	"fmt"
	"sort"
)

// wrapperKeys are the envelope property names list payloads commonly hide
// behind, checked in order.
var wrapperKeys = []string{"items", "data", "events", "results"}

// ExtractItems normalizes one raw tool payload into a flat item list. Arrays
// are used directly, objects are unwrapped through the known wrapper keys and
// then through their first array-valued property, and a plain object becomes a
// single item. Scalar payloads carry no items.
func ExtractItems(raw any) []map[string]any {
	switch value := raw.(type) {
	case nil:
		return nil
	case []map[string]any:
		return value
	case []any:
		return toItems(value)
	case map[string]any:
		for _, key := range wrapperKeys {
			if arr, ok := value[key].([]any); ok {
				return toItems(arr)
			}
		}
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if arr, ok := value[key].([]any); ok {
				return toItems(arr)
			}
		}
		return []map[string]any{value}
	default:
		return nil
	}
}

// DedupeByID drops items repeating an id seen earlier, keeping the first
// occurrence. Items without an id are always kept.
func DedupeByID(items []map[string]any) []map[string]any {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	deduped := make([]map[string]any, 0, len(items))
	for _, item := range items {
		id, ok := item["id"]
		if !ok || id == nil {
			deduped = append(deduped, item)
			continue
		}
		key := fmt.Sprint(id)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, item)
	}
	return deduped
}

func toItems(arr []any) []map[string]any {
	items := make([]map[string]any, 0, len(arr))
	for _, entry := range arr {
		if item, ok := entry.(map[string]any); ok {
			items = append(items, item)
		}
	}
	return items
}
