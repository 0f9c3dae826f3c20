// Package planner turns a datadiff.Result into a MigrationPlan: the
// rows to insert, update, delete, and review, decided by a migration
// Mode and, for updated rows, a ConflictResolution strategy.
package planner
