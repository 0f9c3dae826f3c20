package orchestrator

import (
	"github.com/pseudomuto/dbmig/pkg/datadiff"
	"github.com/pseudomuto/dbmig/pkg/executor"
	"github.com/pseudomuto/dbmig/pkg/planner"
)

// TableMapping names one source/target table pair and the key columns
// used to match rows between them. An empty KeyColumns falls back to
// datadiff's automatic PrimaryKey resolution.
type TableMapping struct {
	SourceTable string
	TargetTable string
	KeyColumns  []string
}

// Config controls every table in a Run. Diff and Mode/Conflict settings
// are shared across the whole job; per-table key resolution comes from
// each TableMapping.
type Config struct {
	MigrationID string

	Mode     planner.Mode
	Conflict planner.ConflictResolution

	IgnoreColumns       []string
	NormalizeWhitespace bool
	CaseInsensitive     bool
	NumericTolerance    *float64
	NullEqualsEmpty     bool
	UseHashMode         bool

	BatchSize       int
	RetryCount      int
	RetryBackoffMs  int
	AutoRollback    bool
	TransactionMode executor.TransactionMode
}

func (c Config) diffConfig(strategy datadiff.MatchStrategy) datadiff.Config {
	return datadiff.Config{
		Strategy:            strategy,
		IgnoreColumns:       c.IgnoreColumns,
		NormalizeWhitespace: c.NormalizeWhitespace,
		CaseInsensitive:     c.CaseInsensitive,
		NumericTolerance:    c.NumericTolerance,
		NullEqualsEmpty:     c.NullEqualsEmpty,
		UseHashMode:         c.UseHashMode,
		BatchSize:           c.BatchSize,
	}
}

func (c Config) plannerConfig() planner.Config {
	return planner.Config{
		Mode:      c.Mode,
		Conflict:  c.Conflict,
		BatchSize: c.BatchSize,
	}
}

func (c Config) executorConfig() executor.Config {
	return executor.Config{
		BatchSize:       c.BatchSize,
		RetryCount:      c.RetryCount,
		RetryBackoffMs:  c.RetryBackoffMs,
		AutoRollback:    c.AutoRollback,
		TransactionMode: c.TransactionMode,
	}
}

// Status is the terminal outcome of a Run.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRolledBack Status = "rolled_back"
)

// Result aggregates every table's executor.MigrationResult into one
// job-level outcome.
type Result struct {
	RowsInserted int
	RowsUpdated  int
	RowsDeleted  int
	RowsSkipped  int
	ErrorCount   int
	DurationMs   int64
	Status       Status

	// Warnings carries non-fatal notices, e.g. a dependency cycle
	// detected during the topological sort.
	Warnings []string
}

func statusRank(s Status) int {
	switch s {
	case StatusCancelled:
		return 3
	case StatusRolledBack:
		return 2
	case StatusFailed:
		return 1
	default:
		return 0
	}
}

// worse returns whichever of a, b has higher precedence: cancelled
// outranks rolled_back outranks failed outranks completed.
func worse(a, b Status) Status {
	if statusRank(b) > statusRank(a) {
		return b
	}
	return a
}
