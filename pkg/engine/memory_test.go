package engine_test

import (
	"context"
	"testing"

	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/pseudomuto/dbmig/pkg/schema"
	"github.com/stretchr/testify/require"
)

func usersSchema() schema.SchemaInfo {
	return schema.SchemaInfo{
		DatabaseName: "app",
		Tables: []schema.TableInfo{
			{TableName: "users", Columns: []schema.ColumnInfo{{Name: "id", IsPrimaryKey: true}}},
		},
	}
}

func TestMemoryDriver_ConnectLifecycle(t *testing.T) {
	d := engine.NewMemoryDriver(engine.Postgres, usersSchema())
	require.False(t, d.IsConnected())

	require.NoError(t, d.Connect(context.Background()))
	require.True(t, d.IsConnected())

	require.NoError(t, d.Disconnect(context.Background()))
	require.False(t, d.IsConnected())
}

func TestMemoryDriver_GetTableInfoNotFound(t *testing.T) {
	d := engine.NewMemoryDriver(engine.Postgres, usersSchema())
	_, err := d.GetTableInfo(context.Background(), "missing")
	require.ErrorIs(t, err, engine.ErrDriver)
}

func TestMemoryDriver_GetRowsAppliesLimitAndOffset(t *testing.T) {
	d := engine.NewMemoryDriver(engine.Postgres, usersSchema())
	d.SetRows("users", row.RowSet{
		row.NewRow(row.Field{Name: "id", Value: row.Number(1)}),
		row.NewRow(row.Field{Name: "id", Value: row.Number(2)}),
		row.NewRow(row.Field{Name: "id", Value: row.Number(3)}),
	})

	limit, offset := 1, 1
	rs, err := d.GetRows(context.Background(), "users", &limit, &offset)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	v, _ := rs[0].Get("id")
	require.Equal(t, row.Number(2), v)
}

func TestMemoryDriver_GetRowsUnknownTableIsEmpty(t *testing.T) {
	d := engine.NewMemoryDriver(engine.Postgres, usersSchema())
	rs, err := d.GetRows(context.Background(), "missing", nil, nil)
	require.NoError(t, err)
	require.Empty(t, rs)
}

func TestMemoryDriver_ExecuteQueryAppendsToExecLog(t *testing.T) {
	d := engine.NewMemoryDriver(engine.Postgres, usersSchema())
	require.NoError(t, d.ExecuteQuery(context.Background(), "INSERT INTO users VALUES (1)"))
	require.NoError(t, d.ExecuteQuery(context.Background(), "INSERT INTO users VALUES (2)"))
	require.Equal(t, []string{
		"INSERT INTO users VALUES (1)",
		"INSERT INTO users VALUES (2)",
	}, d.ExecLog())
}

func TestMemoryDriver_GetRowCount(t *testing.T) {
	d := engine.NewMemoryDriver(engine.Postgres, usersSchema())
	d.SetRows("users", row.RowSet{row.NewRow(row.Field{Name: "id", Value: row.Number(1)})})

	n, err := d.GetRowCount(context.Background(), "users")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestMemoryDriver_EngineTag(t *testing.T) {
	d := engine.NewMemoryDriver(engine.ClickHouse, usersSchema())
	require.Equal(t, engine.ClickHouse, d.EngineTag())
}

func TestMemoryDriver_BeginCommitRollbackAreNoops(t *testing.T) {
	d := engine.NewMemoryDriver(engine.Postgres, usersSchema())
	ctx := context.Background()
	require.NoError(t, d.Begin(ctx))
	require.NoError(t, d.Commit(ctx))
	require.NoError(t, d.Rollback(ctx))
}
