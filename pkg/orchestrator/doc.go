// Package orchestrator drives a multi-table migration: it pre-fetches
// target schemas, topologically sorts tables by foreign-key dependency,
// and for each table in that order streams rows, runs the comparator
// and planner, generates SQL, executes it, and reports progress.
package orchestrator
