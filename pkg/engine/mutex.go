package engine

import (
	"context"
	"sync"

	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/pseudomuto/dbmig/pkg/schema"
)

// SerializedDriver wraps an EngineDriver with a per-connection mutex so
// that reads and the per-batch write path never interleave mutations on
// the same connection. The mutex is held for the duration of exactly one
// driver call, matching the suspension-point model in which the core
// only ever yields at driver calls and progress-sink deliveries.
type SerializedDriver struct {
	inner EngineDriver
	mu    sync.Mutex
}

// Serialize wraps an EngineDriver. If driver already implements
// *SerializedDriver it is returned unwrapped, so wrapping is idempotent.
func Serialize(driver EngineDriver) *SerializedDriver {
	if sd, ok := driver.(*SerializedDriver); ok {
		return sd
	}
	return &SerializedDriver{inner: driver}
}

func (s *SerializedDriver) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Connect(ctx)
}

func (s *SerializedDriver) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Disconnect(ctx)
}

func (s *SerializedDriver) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsConnected()
}

func (s *SerializedDriver) GetSchema(ctx context.Context) (*schema.SchemaInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetSchema(ctx)
}

func (s *SerializedDriver) GetTables(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetTables(ctx)
}

func (s *SerializedDriver) GetTableInfo(ctx context.Context, name string) (*schema.TableInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetTableInfo(ctx, name)
}

func (s *SerializedDriver) GetRows(ctx context.Context, table string, limit, offset *int) (row.RowSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetRows(ctx, table, limit, offset)
}

func (s *SerializedDriver) ExecuteQuery(ctx context.Context, sql string, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ExecuteQuery(ctx, sql, args...)
}

func (s *SerializedDriver) Begin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Begin(ctx)
}

func (s *SerializedDriver) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Commit(ctx)
}

func (s *SerializedDriver) Rollback(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Rollback(ctx)
}

func (s *SerializedDriver) EngineTag() Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.EngineTag()
}

func (s *SerializedDriver) GetRowCount(ctx context.Context, table string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetRowCount(ctx, table)
}
