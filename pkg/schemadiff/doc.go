// Package schemadiff compares two TableInfo snapshots and reports every
// difference between them: tables, columns, indexes, and constraints
// added, removed, or modified.
//
// Matching is by name at every level. A table present on only one side
// is Added or Removed outright; a table present on both sides is
// either Unchanged (every column/index/constraint matches) or
// decomposed into one SchemaChange per sub-object - Added, Removed or
// Modified where it differs, Unchanged where it matches - and the
// table itself is never recorded as Modified.
package schemadiff
