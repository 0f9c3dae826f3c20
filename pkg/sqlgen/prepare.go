package sqlgen

import (
	"fmt"
	"unicode/utf8"

	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/pseudomuto/dbmig/pkg/schema"
)

// PrepareRowForInsert applies the row-preparation rules to r ahead of
// GenerateInsert, iterating target's columns: a too-long string is
// truncated to MaxLength code points with a warning; a null or absent
// value against a NOT NULL column with no default marks the row for
// skip. The returned row is the empty zero Row (with ok=false) when the
// row was skipped.
func PrepareRowForInsert(r row.Row, target schema.TableInfo) (prepared row.Row, warnings []string, ok bool) {
	prepared = r
	ok = true

	for _, col := range target.Columns {
		v, present := prepared.Get(col.Name)

		if present && v.Kind == row.KindString && col.MaxLength != nil && *col.MaxLength > 0 {
			if n := utf8.RuneCountInString(v.Str); n > *col.MaxLength {
				truncated := truncateRunes(v.Str, *col.MaxLength)
				prepared = prepared.With(col.Name, row.String(truncated))
				warnings = append(warnings, fmt.Sprintf("column %q truncated from %d to %d characters", col.Name, n, *col.MaxLength))
			}
		}

		missingOrNull := !present || (present && v.IsNull())
		if missingOrNull && !col.IsNullable && col.DefaultValue == nil {
			warnings = append(warnings, fmt.Sprintf("column %q is NOT NULL with no default and no value; row skipped", col.Name))
			ok = false
		}
	}

	if !ok {
		return row.Row{}, warnings, false
	}
	return prepared, warnings, true
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
