package executor

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type category struct {
	name  string
	items []Statement
}

// Execute applies ops to target in the fixed order inserts, updates,
// deletes, each split into batches of cfg.BatchSize. A batch that fails
// is retried up to cfg.RetryCount times with exponential back-off
// (retry_backoff_ms * 2^(attempt-1)) before it is recorded as a
// MigrationError and skipped. The cancellation token is polled before
// every batch and before every statement within a batch; a cancellation
// observed before the first batch returns a Cancelled result with every
// counter at zero.
func Execute(ctx context.Context, target TargetWriter, ops Operations, cfg Config) *MigrationResult {
	startedAt := time.Now()
	result := &MigrationResult{Status: Running}

	tx, useTx := target.(Transactional)
	useTx = useTx && cfg.TransactionMode != None

	cats := []category{
		{"insert", ops.Inserts},
		{"update", ops.Updates},
		{"delete", ops.Deletes},
	}

	batchIndex := 0
	cancelledMidRun := false

outer:
	for _, cat := range cats {
		for start := 0; start < len(cat.items); start += cfg.batchSize() {
			end := start + cfg.batchSize()
			if end > len(cat.items) {
				end = len(cat.items)
			}
			batch := cat.items[start:end]

			if cfg.cancelled() {
				cancelledMidRun = true
				break outer
			}

			if useTx && cfg.TransactionMode == PerBatch {
				if err := tx.Begin(ctx); err != nil {
					result.Errors = append(result.Errors, MigrationError{BatchIndex: batchIndex, Message: err.Error()})
					batchIndex++
					continue
				}
			}

			applied, err := execBatchWithRetry(ctx, target, batch, cfg)
			if cfg.cancelled() && !applied {
				if useTx && cfg.TransactionMode == PerBatch {
					_ = tx.Rollback(ctx)
				}
				cancelledMidRun = true
				break outer
			}

			if err != nil {
				if useTx && cfg.TransactionMode == PerBatch {
					_ = tx.Rollback(ctx)
				}
				result.Errors = append(result.Errors, MigrationError{BatchIndex: batchIndex, Message: err.Error()})
				if cfg.OnBatch != nil {
					cfg.OnBatch(cat.name, len(batch), err)
				}
				batchIndex++
				continue
			}

			if useTx && cfg.TransactionMode == PerBatch {
				if cerr := tx.Commit(ctx); cerr != nil {
					result.Errors = append(result.Errors, MigrationError{BatchIndex: batchIndex, Message: cerr.Error()})
					if cfg.OnBatch != nil {
						cfg.OnBatch(cat.name, len(batch), cerr)
					}
					batchIndex++
					continue
				}
			}

			switch cat.name {
			case "insert":
				result.RowsInserted += len(batch)
			case "update":
				result.RowsUpdated += len(batch)
			case "delete":
				result.RowsDeleted += len(batch)
			}
			if cfg.OnBatch != nil {
				cfg.OnBatch(cat.name, len(batch), nil)
			}
			batchIndex++
		}
	}

	if !cancelledMidRun {
		result.RowsSkipped += cfg.ReviewCount
	}

	switch {
	case cancelledMidRun:
		result.Status = Cancelled
	case len(result.Errors) == 0:
		result.Status = Completed
		if useTx && cfg.TransactionMode == WholeMigration {
			if err := tx.Commit(ctx); err != nil {
				result.Errors = append(result.Errors, MigrationError{BatchIndex: batchIndex, Message: err.Error()})
				result.Status = Failed
			}
		}
	case cfg.AutoRollback:
		if useTx && cfg.TransactionMode == WholeMigration {
			_ = tx.Rollback(ctx)
		}
		result.Status = RolledBack
	default:
		result.Status = Failed
	}

	result.DurationMs = time.Since(startedAt).Milliseconds()
	return result
}

// execBatchWithRetry runs every statement in batch, retrying the whole
// batch on failure. applied is true only when an attempt ran to the end
// with no cancellation observed. A cancellation seen before or after an
// attempt returns applied=false with a nil error, even if some of the
// batch's statements already ran; the caller does not count that batch.
func execBatchWithRetry(ctx context.Context, target TargetWriter, batch []Statement, cfg Config) (applied bool, err error) {
	attempts := cfg.RetryCount + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		if cfg.cancelled() {
			return false, nil
		}

		err = execBatch(ctx, target, batch, cfg)
		if cfg.cancelled() {
			return false, nil
		}
		if err == nil {
			return true, nil
		}

		if attempt == attempts {
			break
		}

		backoff := time.Duration(cfg.RetryBackoffMs) * time.Millisecond
		for i := 1; i < attempt; i++ {
			backoff *= 2
		}
		cfg.sleep(backoff)
	}
	return false, errors.Wrap(err, "batch failed after retries")
}

func execBatch(ctx context.Context, target TargetWriter, batch []Statement, cfg Config) error {
	for _, stmt := range batch {
		if cfg.cancelled() {
			return nil
		}
		if err := target.ExecuteQuery(ctx, stmt.SQL, stmt.Args...); err != nil {
			return err
		}
	}
	return nil
}
