// Package datadiff compares two row sets drawn from the same logical
// table and classifies every row as inserted, deleted, matched, or
// updated, keyed by a configurable match strategy.
package datadiff
