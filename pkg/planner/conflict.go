package planner

import (
	"strings"

	"github.com/pseudomuto/dbmig/pkg/datadiff"
	"github.com/pseudomuto/dbmig/pkg/row"
)

// resolve applies the conflict resolution strategy to one updated row,
// returning the row to write (if any) and whether it belongs in
// ToUpdate (true) or ToReview (false). A false ok return means the
// update is dropped entirely (TargetWins, or NewestWins favoring the
// target).
func resolve(u datadiff.UpdatedRow, cfg ConflictResolution) (result row.Row, review bool, ok bool) {
	switch cfg.Kind {
	case TargetWins:
		return row.Row{}, false, false
	case ManualReview:
		return u.SourceRow, true, true
	case NewestWins:
		col := cfg.TimestampColumn
		if col == "" {
			col = "updated_at"
		}
		if newestWinsSourceWins(u, col) {
			return u.SourceRow, false, true
		}
		return row.Row{}, false, false
	case CustomRules:
		return applyCustomRules(u, cfg.Rules), false, true
	case SourceWins:
		fallthrough
	default:
		return u.SourceRow, false, true
	}
}

// newestWinsSourceWins reports whether the source side should win
// under NewestWins: source >= target lexically, or either side is
// missing the timestamp column.
func newestWinsSourceWins(u datadiff.UpdatedRow, col string) bool {
	sv, sok := u.SourceRow.Get(col)
	tv, tok := u.TargetRow.Get(col)
	if !sok || !tok || sv.IsNull() || tv.IsNull() {
		return true
	}
	return row.Stringify(sv, row.NormalizeOptions{}) >= row.Stringify(tv, row.NormalizeOptions{})
}

// applyCustomRules clones the source row, then overwrites any column
// whose rule names "target" with the target's value. Rules not of the
// form "column:source"/"column:target" are ignored.
func applyCustomRules(u datadiff.UpdatedRow, rules []string) row.Row {
	merged := u.SourceRow
	for _, rule := range rules {
		parts := strings.SplitN(rule, ":", 2)
		if len(parts) != 2 {
			continue
		}
		column, side := parts[0], parts[1]
		if side != "target" {
			continue
		}
		if tv, ok := u.TargetRow.Get(column); ok {
			merged = merged.With(column, tv)
		}
	}
	return merged
}
