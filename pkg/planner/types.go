package planner

import "github.com/pseudomuto/dbmig/pkg/row"

// Mode selects which of a datadiff.Result's row lists a MigrationPlan
// acts on.
type Mode string

const (
	// SchemaOnly produces an empty plan: no data moves.
	SchemaOnly Mode = "SchemaOnly"
	// AppendOnly plans every inserted row and nothing else.
	AppendOnly Mode = "AppendOnly"
	// Upsert plans inserts plus conflict-resolved updates.
	Upsert Mode = "Upsert"
	// Merge behaves identically to Upsert.
	Merge Mode = "Merge"
	// Mirror behaves like Upsert and additionally plans deletes.
	Mirror Mode = "Mirror"
)

// ConflictKind discriminates the variant carried by a ConflictResolution.
type ConflictKind string

const (
	// SourceWins sends every updated row's source side to ToUpdate.
	SourceWins ConflictKind = "SourceWins"
	// TargetWins drops every updated row: the target is left as-is.
	TargetWins ConflictKind = "TargetWins"
	// NewestWins compares TimestampColumn lexically and keeps the newer side.
	NewestWins ConflictKind = "NewestWins"
	// ManualReview sends every updated row's source side to ToReview instead of ToUpdate.
	ManualReview ConflictKind = "ManualReview"
	// CustomRules merges source and target per-column per Rules.
	CustomRules ConflictKind = "CustomRules"
)

// ConflictResolution selects how Plan resolves each updated row when
// both sides of a match disagree.
type ConflictResolution struct {
	Kind ConflictKind

	// TimestampColumn is used by NewestWins; defaults to "updated_at"
	// when empty.
	TimestampColumn string

	// Rules is used by CustomRules: each entry is "column:source" or
	// "column:target". Unrecognised entries are ignored.
	Rules []string
}

// Config controls Plan's behavior.
type Config struct {
	Mode      Mode
	Conflict  ConflictResolution
	BatchSize int

	// DryRun carries through to MigrationPlan.DryRun; Plan itself never
	// executes anything regardless of this value.
	DryRun bool
}

// PlannedUpdate is one row Plan decided should be written to the
// target, together with the subset of columns that actually changed -
// the set a partial UPDATE should restrict its SET list to.
type PlannedUpdate struct {
	Row            row.Row
	ChangedColumns []string
}

// MigrationPlan is the full set of operations Plan decided to perform.
type MigrationPlan struct {
	ToInsert   row.RowSet
	ToUpdate   []PlannedUpdate
	ToDelete   row.RowSet
	ToReview   []PlannedUpdate
	BatchCount int

	// SourceCount and TargetCount are the total row counts datadiff.Result
	// classified on each side, independent of Mode.
	SourceCount int
	TargetCount int

	// Mode and DryRun echo the Config that produced this plan.
	Mode   Mode
	DryRun bool
}
