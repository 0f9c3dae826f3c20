// Package chdriver is a reference engine.EngineDriver adapter backed by
// clickhouse-go/v2. It is the one concrete driver shipped with this
// module, exercised by this package's own integration test and used by
// cmd/dbmig when a --source or --target DSN names a clickhouse://
// connection.
//
// It is not a general-purpose production driver: schema introspection
// covers the columns and constraints the core needs (pkg/schema) and
// nothing more.
package chdriver
