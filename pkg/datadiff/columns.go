package datadiff

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/pseudomuto/dbmig/pkg/row"
)

// excludedSet builds the set of column names excluded from equality
// and hashing: the key columns plus the configured ignore list.
func excludedSet(keyColumns []string, ignore map[string]bool) map[string]bool {
	excluded := make(map[string]bool, len(keyColumns)+len(ignore))
	for _, c := range keyColumns {
		excluded[c] = true
	}
	for c := range ignore {
		excluded[c] = true
	}
	return excluded
}

// comparableColumns returns the sorted union of field names present on
// either row, excluding the given set.
func comparableColumns(a, b row.Row, excluded map[string]bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range a.Names() {
		if !excluded[name] && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range b.Names() {
		if !excluded[name] && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// rowHash computes SHA-256 over the row's own fields, sorted by name
// and excluding the given set, as "name=value;" pairs under the given
// normalization rules - the hash-mode fast path's fingerprint.
func rowHash(r row.Row, excluded map[string]bool, opts row.NormalizeOptions) string {
	names := make([]string, 0, r.Len())
	for _, name := range r.Names() {
		if !excluded[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		v, _ := r.Get(name)
		h.Write([]byte(name))
		h.Write([]byte("="))
		h.Write([]byte(row.Stringify(v, opts)))
		h.Write([]byte(";"))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// changedColumns compares source and target over the given column
// list under the given normalization rules, returning every column
// whose values differ, sorted ascending.
func changedColumns(source, target row.Row, columns []string, opts row.NormalizeOptions) []string {
	var changed []string
	for _, col := range columns {
		sv, sok := source.Get(col)
		if !sok {
			sv = row.Null()
		}
		tv, tok := target.Get(col)
		if !tok {
			tv = row.Null()
		}
		if !row.Equal(sv, tv, opts) {
			changed = append(changed, col)
		}
	}
	return changed
}
