// Package sqlgen renders INSERT/UPDATE/DELETE statements against a
// schema.TableInfo target, per an engine Dialect's identifier-quoting
// and literal-encoding rules, and prepares rows for insertion
// (truncation, NOT NULL skip logic) ahead of generation.
package sqlgen
