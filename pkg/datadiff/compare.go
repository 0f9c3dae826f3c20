package datadiff

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/row"
)

// ErrInvalidConfig is returned when a Config names an out-of-range
// Fuzzy threshold or an empty CompositeKey column list.
var ErrInvalidConfig = errors.New("datadiff: invalid config")

// Compare classifies every row of source and target into matched,
// inserted, updated, and deleted, per the configured MatchStrategy.
// Compare is total over any well-formed Config: an unimplemented
// strategy (CustomExpression) degrades to "everything changed" rather
// than failing the comparison.
func Compare(source, target row.RowSet, cfg Config) (*Result, error) {
	switch cfg.Strategy.Kind {
	case Fuzzy:
		if cfg.Strategy.Threshold < 0 || cfg.Strategy.Threshold > 1 {
			return nil, errors.Wrapf(ErrInvalidConfig, "fuzzy threshold %v out of [0,1]", cfg.Strategy.Threshold)
		}
		return compareFuzzy(source, target, cfg), nil
	case CompositeKey:
		if len(cfg.Strategy.Columns) == 0 {
			return nil, errors.Wrap(ErrInvalidConfig, "composite key strategy requires at least one column")
		}
		return compareByKey(source, target, cfg), nil
	case CustomExpression:
		return compareCustomExpression(source, target), nil
	default:
		return compareByKey(source, target, cfg), nil
	}
}

func compareByKey(source, target row.RowSet, cfg Config) *Result {
	keyColumns := resolveKeyColumns(cfg.Strategy, source, target)
	excluded := excludedSet(keyColumns, cfg.ignoreSet())
	opts := cfg.normalizeOptions()

	sourceByKey := indexByKey(source, keyColumns)
	targetByKey := indexByKey(target, keyColumns)

	result := &Result{}

	for _, s := range source {
		key := rowKey(s, keyColumns)
		t, inTarget := targetByKey[key]
		if !inTarget {
			result.InsertedRows = append(result.InsertedRows, s)
			continue
		}

		var changed []string
		if cfg.UseHashMode {
			if rowHash(s, excluded, opts) != rowHash(t, excluded, opts) {
				changed = changedColumns(s, t, comparableColumns(s, t, excluded), opts)
			}
		} else {
			changed = changedColumns(s, t, comparableColumns(s, t, excluded), opts)
		}

		if len(changed) > 0 {
			result.UpdatedRows = append(result.UpdatedRows, UpdatedRow{SourceRow: s, TargetRow: t, ChangedColumns: changed})
		} else {
			result.MatchedRows++
		}
	}

	for _, t := range target {
		key := rowKey(t, keyColumns)
		if _, inSource := sourceByKey[key]; !inSource {
			result.DeletedRows = append(result.DeletedRows, t)
		}
	}

	return result
}

// compareCustomExpression implements the spec's placeholder behavior
// for a strategy this comparator does not evaluate: every source row
// is treated as inserted, every target row as deleted, and a single
// ErrorRow notes why.
func compareCustomExpression(source, target row.RowSet) *Result {
	return &Result{
		InsertedRows: append(row.RowSet(nil), source...),
		DeletedRows:  append(row.RowSet(nil), target...),
		ErrorRows: []ErrorRow{
			{Message: "custom expression match strategy is not implemented"},
		},
	}
}
