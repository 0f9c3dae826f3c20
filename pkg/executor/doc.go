// Package executor applies a planner.MigrationPlan to a target in
// batches, with retry/back-off per batch and cooperative cancellation,
// accumulating a MigrationResult.
package executor
