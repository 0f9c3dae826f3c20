package engine

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/pseudomuto/dbmig/pkg/schema"
)

// MemoryDriver is an in-memory fake EngineDriver backed by a
// schema.SchemaInfo and a set of row.RowSet keyed by table name. It
// satisfies EngineDriver without any network dependency and is the
// driver every unit test in pkg/orchestrator and pkg/executor uses in
// place of a real connection.
type MemoryDriver struct {
	mu        sync.Mutex
	tag       Tag
	connected bool
	schema    schema.SchemaInfo
	rows      map[string]row.RowSet
	execLog   []string
}

// NewMemoryDriver builds a MemoryDriver for the given engine tag and
// schema. Rows are added afterward with SetRows.
func NewMemoryDriver(tag Tag, s schema.SchemaInfo) *MemoryDriver {
	return &MemoryDriver{
		tag:    tag,
		schema: s,
		rows:   make(map[string]row.RowSet),
	}
}

// SetRows installs the rows visible for a table.
func (d *MemoryDriver) SetRows(table string, rs row.RowSet) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows[table] = rs
}

// ExecLog returns every statement passed to ExecuteQuery, in call order.
// Useful for asserting what the executor or orchestrator generated.
func (d *MemoryDriver) ExecLog() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.execLog))
	copy(out, d.execLog)
	return out
}

func (d *MemoryDriver) Connect(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connected = true
	return nil
}

func (d *MemoryDriver) Disconnect(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connected = false
	return nil
}

func (d *MemoryDriver) IsConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connected
}

func (d *MemoryDriver) GetSchema(context.Context) (*schema.SchemaInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.schema
	return &s, nil
}

func (d *MemoryDriver) GetTables(context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.schema.Tables))
	for i, t := range d.schema.Tables {
		out[i] = t.TableName
	}
	return out, nil
}

func (d *MemoryDriver) GetTableInfo(_ context.Context, name string) (*schema.TableInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.schema.Tables {
		if t.TableName == name {
			ti := t
			return &ti, nil
		}
	}
	return nil, errors.Wrapf(ErrDriver, "table %q not found", name)
}

func (d *MemoryDriver) GetRows(_ context.Context, table string, limit, offset *int) (row.RowSet, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rs, ok := d.rows[table]
	if !ok {
		return row.RowSet{}, nil
	}
	start := 0
	if offset != nil && *offset > 0 {
		start = *offset
	}
	if start > len(rs) {
		start = len(rs)
	}
	end := len(rs)
	if limit != nil && start+*limit < end {
		end = start + *limit
	}
	out := make(row.RowSet, end-start)
	copy(out, rs[start:end])
	return out, nil
}

func (d *MemoryDriver) ExecuteQuery(_ context.Context, sql string, _ ...any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.execLog = append(d.execLog, sql)
	return nil
}

func (d *MemoryDriver) Begin(context.Context) error    { return nil }
func (d *MemoryDriver) Commit(context.Context) error   { return nil }
func (d *MemoryDriver) Rollback(context.Context) error { return nil }

func (d *MemoryDriver) EngineTag() Tag { return d.tag }

func (d *MemoryDriver) GetRowCount(_ context.Context, table string) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.rows[table])), nil
}
