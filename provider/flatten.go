package provider

import (
	"sort"
	"strconv"
	"strings"
)

// flattenRecord collects every leaf string/number value of a structured
// record into a single newline-joined payload. Nested object keys are
// visited in lexicographic order and array elements in index order, so the
// flattened text is deterministic and downstream scores are reproducible.
func flattenRecord(record map[string]any) string {
	var leaves []string
	collectLeaves(record, &leaves)
	return strings.Join(leaves, "\n")
}

func collectLeaves(value any, out *[]string) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			collectLeaves(v[key], out)
		}
	case []any:
		for _, elem := range v {
			collectLeaves(elem, out)
		}
	case string:
		*out = append(*out, v)
	case float64:
		// JSON numbers decode to float64; format drops the trailing .0 for
		// integral values.
		*out = append(*out, strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		*out = append(*out, strconv.Itoa(v))
	}
	// Booleans, nulls, and other leaf kinds carry no searchable text.
}
