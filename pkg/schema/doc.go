// Package schema holds the normalized, engine-independent description of
// a database: its tables, columns, indexes, and constraints.
//
// Values in this package are produced by an engine.EngineDriver,
// consumed immutably by pkg/schemadiff and pkg/sqlgen, and discarded
// once a run completes. Equal methods are built on pkg/compare, the way
// the teacher builds Equal on its own parsed-DDL types.
package schema
