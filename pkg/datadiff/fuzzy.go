package datadiff

import "github.com/pseudomuto/dbmig/pkg/row"

// compareFuzzy implements the Fuzzy match strategy: greedily, in
// source order, pair each source row with the best remaining target
// row by fraction of equal non-ignored columns. A pair only forms when
// that fraction meets the configured threshold; fuzzy matching never
// revisits a decision once made.
func compareFuzzy(source, target row.RowSet, cfg Config) *Result {
	ignore := cfg.ignoreSet()
	opts := cfg.normalizeOptions()
	threshold := cfg.Strategy.Threshold

	remaining := make([]row.Row, len(target))
	copy(remaining, target)
	used := make([]bool, len(remaining))

	result := &Result{}

	for _, s := range source {
		bestIdx := -1
		bestScore := -1.0

		for i, t := range remaining {
			if used[i] {
				continue
			}
			score := similarity(s, t, ignore, opts)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx >= 0 && bestScore >= threshold {
			used[bestIdx] = true
			t := remaining[bestIdx]
			changed := changedColumns(s, t, comparableColumns(s, t, ignore), opts)
			if len(changed) > 0 {
				result.UpdatedRows = append(result.UpdatedRows, UpdatedRow{SourceRow: s, TargetRow: t, ChangedColumns: changed})
			} else {
				result.MatchedRows++
			}
		} else {
			result.InsertedRows = append(result.InsertedRows, s)
		}
	}

	for i, t := range remaining {
		if !used[i] {
			result.DeletedRows = append(result.DeletedRows, t)
		}
	}

	return result
}

// similarity computes the fraction of non-ignored columns (the union
// of both rows' field names) on which a and b compare equal.
func similarity(a, b row.Row, ignore map[string]bool, opts row.NormalizeOptions) float64 {
	columns := comparableColumns(a, b, ignore)
	if len(columns) == 0 {
		return 1
	}

	equal := 0
	for _, col := range columns {
		av, aok := a.Get(col)
		if !aok {
			av = row.Null()
		}
		bv, bok := b.Get(col)
		if !bok {
			bv = row.Null()
		}
		if row.Equal(av, bv, opts) {
			equal++
		}
	}
	return float64(equal) / float64(len(columns))
}
