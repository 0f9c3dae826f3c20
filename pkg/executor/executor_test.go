package executor_test

import (
	"context"
	"testing"
	"time"

	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/executor"
	"github.com/pseudomuto/dbmig/pkg/schema"
	"github.com/stretchr/testify/require"
)

// flakyWriter fails the first failCount calls to ExecuteQuery, whatever
// their SQL, then succeeds. It counts every call; tests capture back-off
// durations through Config.Sleep, so no real clock is involved.
type flakyWriter struct {
	failCount int
	calls     int
}

func (w *flakyWriter) ExecuteQuery(context.Context, string, ...any) error {
	w.calls++
	if w.calls <= w.failCount {
		return errBoom
	}
	return nil
}

var errBoom = errTest("boom")

type errTest string

func (e errTest) Error() string { return string(e) }

func sampleOps() executor.Operations {
	return executor.Operations{
		Inserts: []executor.Statement{{SQL: "INSERT 1"}, {SQL: "INSERT 2"}},
		Updates: []executor.Statement{{SQL: "UPDATE 1"}},
		Deletes: []executor.Statement{{SQL: "DELETE 1"}},
	}
}

func noSleep(cfg *executor.Config) {
	cfg.Sleep = func(time.Duration) {}
}

func TestExecute_CancellationBeforeFirstBatchZeroesCounters(t *testing.T) {
	cancel := engine.NewCancelToken()
	cancel.Cancel()

	driver := engine.NewMemoryDriver(engine.Postgres, schema.SchemaInfo{})
	cfg := executor.Config{BatchSize: 1, Cancel: cancel}
	noSleep(&cfg)

	result := executor.Execute(context.Background(), driver, sampleOps(), cfg)
	require.Equal(t, executor.Cancelled, result.Status)
	require.Zero(t, result.RowsInserted)
	require.Zero(t, result.RowsUpdated)
	require.Zero(t, result.RowsDeleted)
	require.Zero(t, result.RowsSkipped)
	require.Empty(t, result.Errors)
}

func TestExecute_CancellationBeforeFirstBatchZeroesRowsSkippedEvenWithReviewCount(t *testing.T) {
	cancel := engine.NewCancelToken()
	cancel.Cancel()

	driver := engine.NewMemoryDriver(engine.Postgres, schema.SchemaInfo{})
	cfg := executor.Config{BatchSize: 1, Cancel: cancel, ReviewCount: 5}
	noSleep(&cfg)

	result := executor.Execute(context.Background(), driver, sampleOps(), cfg)
	require.Equal(t, executor.Cancelled, result.Status)
	require.Zero(t, result.RowsSkipped)
}

func TestExecute_CompletesAndOrdersInsertsUpdatesDeletes(t *testing.T) {
	driver := engine.NewMemoryDriver(engine.Postgres, schema.SchemaInfo{})
	cfg := executor.Config{BatchSize: 2}
	noSleep(&cfg)

	result := executor.Execute(context.Background(), driver, sampleOps(), cfg)
	require.Equal(t, executor.Completed, result.Status)
	require.Equal(t, 2, result.RowsInserted)
	require.Equal(t, 1, result.RowsUpdated)
	require.Equal(t, 1, result.RowsDeleted)

	require.Equal(t, []string{"INSERT 1", "INSERT 2", "UPDATE 1", "DELETE 1"}, driver.ExecLog())
}

func TestExecute_RetriesFailedBatchThenSucceeds(t *testing.T) {
	w := &flakyWriter{failCount: 2}
	cfg := executor.Config{BatchSize: 1, RetryCount: 3, RetryBackoffMs: 10}
	var slept []time.Duration
	cfg.Sleep = func(d time.Duration) { slept = append(slept, d) }

	ops := executor.Operations{Inserts: []executor.Statement{{SQL: "INSERT 1"}}}
	result := executor.Execute(context.Background(), w, ops, cfg)

	require.Equal(t, executor.Completed, result.Status)
	require.Equal(t, 1, result.RowsInserted)
	require.Empty(t, result.Errors)
	require.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, slept)
}

func TestExecute_BatchFailsAfterExhaustingRetriesRecordsError(t *testing.T) {
	w := &flakyWriter{failCount: 100}
	cfg := executor.Config{BatchSize: 1, RetryCount: 2, RetryBackoffMs: 5}
	noSleep(&cfg)

	ops := executor.Operations{Inserts: []executor.Statement{{SQL: "INSERT 1"}}}
	result := executor.Execute(context.Background(), w, ops, cfg)

	require.Equal(t, executor.Failed, result.Status)
	require.Zero(t, result.RowsInserted)
	require.Len(t, result.Errors, 1)
	require.Equal(t, 0, result.Errors[0].BatchIndex)
}

func TestExecute_FailedBatchWithAutoRollback(t *testing.T) {
	w := &flakyWriter{failCount: 100}
	cfg := executor.Config{BatchSize: 1, RetryCount: 0, AutoRollback: true}
	noSleep(&cfg)

	ops := executor.Operations{Inserts: []executor.Statement{{SQL: "INSERT 1"}}}
	result := executor.Execute(context.Background(), w, ops, cfg)

	require.Equal(t, executor.RolledBack, result.Status)
	require.Len(t, result.Errors, 1)
}

func TestExecute_ReviewCountAddsToRowsSkipped(t *testing.T) {
	driver := engine.NewMemoryDriver(engine.Postgres, schema.SchemaInfo{})
	cfg := executor.Config{BatchSize: 10, ReviewCount: 3}
	noSleep(&cfg)

	result := executor.Execute(context.Background(), driver, executor.Operations{}, cfg)
	require.Equal(t, executor.Completed, result.Status)
	require.Equal(t, 3, result.RowsSkipped)
}

func TestExecute_CancellationMidRunStopsCleanlyKeepingPriorCounts(t *testing.T) {
	driver := engine.NewMemoryDriver(engine.Postgres, schema.SchemaInfo{})
	cancel := engine.NewCancelToken()
	cfg := executor.Config{BatchSize: 1, Cancel: cancel}
	noSleep(&cfg)

	// Cancel after the first insert batch has already gone through, by
	// wiring a writer that cancels as a side effect of its second call.
	cw := &cancellingWriter{driver: driver, cancel: cancel, cancelAfter: 1}
	ops := executor.Operations{Inserts: []executor.Statement{{SQL: "INSERT 1"}, {SQL: "INSERT 2"}, {SQL: "INSERT 3"}}}

	result := executor.Execute(context.Background(), cw, ops, cfg)
	require.Equal(t, executor.Cancelled, result.Status)
	require.Equal(t, 1, result.RowsInserted)
}

type cancellingWriter struct {
	driver      *engine.MemoryDriver
	cancel      *engine.CancelToken
	cancelAfter int
	calls       int
}

func (w *cancellingWriter) ExecuteQuery(ctx context.Context, sql string, args ...any) error {
	w.calls++
	if w.calls > w.cancelAfter {
		w.cancel.Cancel()
		return nil
	}
	return w.driver.ExecuteQuery(ctx, sql, args...)
}
