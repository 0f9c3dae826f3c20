package executor

import (
	"context"
	"time"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

// ExecutionStatus is the terminal (or in-flight) state of a migration run.
type ExecutionStatus string

const (
	Pending    ExecutionStatus = "Pending"
	Running    ExecutionStatus = "Running"
	Completed  ExecutionStatus = "Completed"
	Failed     ExecutionStatus = "Failed"
	Cancelled  ExecutionStatus = "Cancelled"
	RolledBack ExecutionStatus = "RolledBack"
)

// TransactionMode controls how Execute wraps batches. It is advisory
// here and binding on the live orchestrator, which is the caller that
// actually owns a driver connection.
type TransactionMode string

const (
	PerBatch       TransactionMode = "PerBatch"
	WholeMigration TransactionMode = "WholeMigration"
	None           TransactionMode = "None"
)

// MigrationError records one batch that failed after exhausting its
// retries. is_retryable is always false by the time it's recorded:
// retryable failures are retried internally and never surface here.
type MigrationError struct {
	BatchIndex  int
	Message     string
	IsRetryable bool
}

// MigrationResult is the full outcome of an Execute run.
type MigrationResult struct {
	RowsInserted int
	RowsUpdated  int
	RowsDeleted  int
	RowsSkipped  int
	Errors       []MigrationError
	DurationMs   int64
	Status       ExecutionStatus
}

// Statement is one row-level SQL operation ready to execute.
type Statement struct {
	SQL  string
	Args []any
}

// Operations groups the statements Execute applies, in the fixed order
// inserts -> updates -> deletes.
type Operations struct {
	Inserts []Statement
	Updates []Statement
	Deletes []Statement
}

// TargetWriter is the narrow capability Execute needs from a target: the
// ability to run a statement. engine.EngineDriver satisfies it directly.
type TargetWriter interface {
	ExecuteQuery(ctx context.Context, sql string, args ...any) error
}

// Transactional is an optional capability a TargetWriter may also
// satisfy; Execute type-asserts for it when TransactionMode is not None.
type Transactional interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Config controls Execute's batching, retry, and transaction behavior.
type Config struct {
	BatchSize       int
	RetryCount      int
	RetryBackoffMs  int
	AutoRollback    bool
	TransactionMode TransactionMode
	Cancel          *engine.CancelToken

	// ReviewCount is the number of planner.MigrationPlan.ToReview rows
	// for this table; Execute folds it directly into RowsSkipped since
	// those rows are never handed to Execute as statements.
	ReviewCount int

	// Sleep is the cooperative back-off primitive; defaults to
	// time.Sleep. Tests override it to avoid real delays.
	Sleep func(time.Duration)

	// OnBatch, when set, is called once per batch outcome (category is
	// "insert", "update", or "delete"; err is nil on success). The
	// orchestrator uses this to emit incremental progress events
	// without Execute needing to know about a ProgressSink.
	OnBatch func(category string, size int, err error)
}

func (c Config) batchSize() int {
	if c.BatchSize < 1 {
		return 1
	}
	return c.BatchSize
}

func (c Config) sleep(d time.Duration) {
	if c.Sleep != nil {
		c.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (c Config) cancelled() bool {
	return c.Cancel.Cancelled()
}
