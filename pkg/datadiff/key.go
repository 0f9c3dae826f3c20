package datadiff

import (
	"sort"
	"strings"

	"github.com/pseudomuto/dbmig/pkg/row"
)

// resolveKeyColumns implements the PrimaryKey/CompositeKey key
// resolution rule: PrimaryKey uses ["id"] when the first available row
// (source, falling back to target) carries that field, otherwise the
// sorted union of that row's own field names (a degraded composite
// fallback over every column). CompositeKey uses its configured
// columns verbatim.
func resolveKeyColumns(strategy MatchStrategy, source, target row.RowSet) []string {
	if strategy.Kind == CompositeKey {
		return strategy.Columns
	}

	var sample row.Row
	switch {
	case len(source) > 0:
		sample = source[0]
	case len(target) > 0:
		sample = target[0]
	default:
		return nil
	}

	if sample.Has("id") {
		return []string{"id"}
	}

	names := append([]string(nil), sample.Names()...)
	sort.Strings(names)
	return names
}

// rowKey computes the composite key for r: the '|'-joined, stable
// stringisation of each key field's value, with null -> "NULL". Key
// stringisation does not apply whitespace/case normalization - a key
// is an identity, not a comparison.
func rowKey(r row.Row, keyColumns []string) string {
	parts := make([]string, len(keyColumns))
	for i, col := range keyColumns {
		v, ok := r.Get(col)
		if !ok {
			v = row.Null()
		}
		parts[i] = row.Stringify(v, row.NormalizeOptions{})
	}
	return strings.Join(parts, "|")
}

func indexByKey(rows row.RowSet, keyColumns []string) map[string]row.Row {
	m := make(map[string]row.Row, len(rows))
	for _, r := range rows {
		m[rowKey(r, keyColumns)] = r
	}
	return m
}
