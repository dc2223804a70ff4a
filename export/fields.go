package export

import (
	"sort"

	"github.com/btrfind/btrfind/btrieve"
)

// sortedFieldKeys returns the sorted union of every extracted-field key
// present across records, the column order every exporter uses for the
// non-standard part of its schema.
func sortedFieldKeys(records []*btrieve.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for name := range r.ExtractedFields {
			seen[name] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for name := range seen {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
