package partition

import (
	"github.com/CERNDocumentServer/cds-beard/pkg/errors"
)

// ListsFromRaw normalizes a decoded partition document (JSON or YAML) into
// raw cluster item lists. Keys are the document's field names; items keep
// their decoded scalar values. The result feeds matching.Match directly.
//
// A cluster value that is not a sequence (e.g. a number or a string) is
// malformed upstream data and fails fast with a ClusterValueError; it is
// never coerced into a singleton cluster. A nil value is an empty cluster.
func ListsFromRaw(raw map[string]any) (map[string][]any, error) {
	lists := make(map[string][]any, len(raw))
	for key, value := range raw {
		switch items := value.(type) {
		case nil:
			lists[key] = nil
		case []any:
			for _, item := range items {
				if !isHashable(item) {
					return nil, errors.NewClusterValueError(key, item)
				}
			}
			lists[key] = items
		case []string:
			cluster := make([]any, len(items))
			for i, item := range items {
				cluster[i] = item
			}
			lists[key] = cluster
		default:
			return nil, errors.NewClusterValueError(key, value)
		}
	}
	return lists, nil
}

// FromRaw normalizes a decoded partition document into a partition.
func FromRaw(raw map[string]any) (Partition[string, any], error) {
	lists, err := ListsFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return FromLists(lists), nil
}

// isHashable reports whether a decoded value can serve as an item
// identifier. Nested sequences and mappings cannot.
func isHashable(value any) bool {
	switch value.(type) {
	case []any, map[string]any, map[any]any:
		return false
	}
	return true
}
