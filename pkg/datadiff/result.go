package datadiff

import "github.com/pseudomuto/dbmig/pkg/row"

// UpdatedRow pairs a matched source/target row whose non-key,
// non-ignored columns differ. ChangedColumns is sorted ascending,
// unique, and excludes key and ignored columns.
type UpdatedRow struct {
	SourceRow      row.Row
	TargetRow      row.Row
	ChangedColumns []string
}

// ErrorRow records a row (or strategy-level condition, when Row is
// nil) that Compare could not classify.
type ErrorRow struct {
	Row     *row.Row
	Message string
}

// Result is the full classification of a source/target row-set
// comparison.
type Result struct {
	MatchedRows  int
	InsertedRows row.RowSet
	UpdatedRows  []UpdatedRow
	DeletedRows  row.RowSet
	ErrorRows    []ErrorRow
}
