package engine

import (
	"context"

	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/pseudomuto/dbmig/pkg/schema"
)

// Tag identifies a supported database engine. It is a closed set rather
// than a bare string so that per-engine rule tables (pkg/cxtype,
// pkg/sqlgen) can switch on it exhaustively.
type Tag string

const (
	Postgres   Tag = "postgres"
	MySQL      Tag = "mysql"
	SQLServer  Tag = "sqlserver"
	Oracle     Tag = "oracle"
	SQLite     Tag = "sqlite"
	MongoDB    Tag = "mongodb"
	ClickHouse Tag = "clickhouse"
)

// EngineDriver is the narrow capability the core requires of a concrete
// database connection. Implementations live outside the core (see
// pkg/chdriver for the one reference adapter shipped with this module);
// the core never inspects a driver's internals or does type assertions
// against a specific implementation.
type EngineDriver interface {
	// Connect establishes the underlying connection.
	Connect(ctx context.Context) error

	// Disconnect releases the underlying connection.
	Disconnect(ctx context.Context) error

	// IsConnected reports whether Connect has succeeded and Disconnect
	// has not yet been called.
	IsConnected() bool

	// GetSchema returns a normalized description of every table the
	// driver can see.
	GetSchema(ctx context.Context) (*schema.SchemaInfo, error)

	// GetTables lists table names visible to the driver.
	GetTables(ctx context.Context) ([]string, error)

	// GetTableInfo describes a single table.
	GetTableInfo(ctx context.Context, name string) (*schema.TableInfo, error)

	// GetRows streams rows from a table. A nil limit/offset means
	// "unbounded"/"from the start".
	GetRows(ctx context.Context, table string, limit, offset *int) (row.RowSet, error)

	// ExecuteQuery executes a statement that does not return rows.
	ExecuteQuery(ctx context.Context, sql string, args ...any) error

	// Begin, Commit, and Rollback provide transaction control. Drivers
	// that don't support transactions may implement them as no-ops.
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// EngineTag identifies which engine this driver talks to.
	EngineTag() Tag

	// GetRowCount returns the number of rows in a table, used for
	// progress reporting.
	GetRowCount(ctx context.Context, table string) (int64, error)
}

// ProgressSink is the narrow capability the orchestrator and executor
// use to report progress. It is assumed to be thread-safe and
// non-blocking; the core never synchronizes on event delivery.
type ProgressSink interface {
	// Emit delivers a named event with a JSON-shaped payload.
	Emit(event string, payload map[string]any)
}

// NoopSink discards every event. It is the default sink for callers that
// don't care about progress.
type NoopSink struct{}

// Emit implements ProgressSink.
func (NoopSink) Emit(string, map[string]any) {}
