package sqlgen_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/pseudomuto/dbmig/pkg/schema"
	"github.com/pseudomuto/dbmig/pkg/sqlgen"
	"github.com/stretchr/testify/require"
)

func mkRow(fields ...row.Field) row.Row { return row.NewRow(fields...) }

func TestGenerateInsert(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.Postgres)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(
		row.Field{Name: "name", Value: row.String("Alice")},
		row.Field{Name: "id", Value: row.Number(1)},
	)
	sql := g.GenerateInsert("users", r)
	require.Equal(t, `INSERT INTO "users" ("id", "name") VALUES (1, 'Alice');`, sql)
}

func TestGenerateInsert_MySQLBacktick(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.MySQL)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(row.Field{Name: "id", Value: row.Number(1)})
	sql := g.GenerateInsert("users", r)
	require.Equal(t, "INSERT INTO `users` (`id`) VALUES (1);", sql)
}

func TestGenerateInsert_ClickHouseBacktickBoolAsWord(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.ClickHouse)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(
		row.Field{Name: "id", Value: row.Number(1)},
		row.Field{Name: "active", Value: row.Bool(true)},
	)
	sql := g.GenerateInsert("users", r)
	require.Equal(t, "INSERT INTO `users` (`active`, `id`) VALUES (TRUE, 1);", sql)
}

func TestGenerateInsert_SQLServerBracket(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.SQLServer)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(row.Field{Name: "id", Value: row.Number(1)})
	sql := g.GenerateInsert("users", r)
	require.Equal(t, "INSERT INTO [users] ([id]) VALUES (1);", sql)
}

func TestGenerateInsert_StringEscaping(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.Postgres)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(row.Field{Name: "name", Value: row.String("O'Brien")})
	sql := g.GenerateInsert("users", r)
	require.Contains(t, sql, `'O''Brien'`)
}

func TestGenerateInsert_NullAndBool(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.Postgres)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(
		row.Field{Name: "active", Value: row.Bool(true)},
		row.Field{Name: "deleted_at", Value: row.Null()},
	)
	sql := g.GenerateInsert("users", r)
	require.Equal(t, `INSERT INTO "users" ("active", "deleted_at") VALUES (TRUE, NULL);`, sql)
}

func TestGenerateUpdate(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.Postgres)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(
		row.Field{Name: "id", Value: row.Number(1)},
		row.Field{Name: "name", Value: row.String("Alice")},
	)
	sql := g.GenerateUpdate("users", r, []string{"id"})
	require.Equal(t, `UPDATE "users" SET "name" = 'Alice' WHERE "id" = 1;`, sql)
}

func TestGeneratePartialUpdate_RestrictsToUpdateCols(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.Postgres)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(
		row.Field{Name: "id", Value: row.Number(1)},
		row.Field{Name: "name", Value: row.String("Alice")},
		row.Field{Name: "email", Value: row.String("a@x.com")},
	)
	sql := g.GeneratePartialUpdate("users", r, []string{"email"}, []string{"id"})
	require.Equal(t, `UPDATE "users" SET "email" = 'a@x.com' WHERE "id" = 1;`, sql)
}

func TestGeneratePartialUpdate_EmptySetListSkips(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.Postgres)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(row.Field{Name: "id", Value: row.Number(1)})
	sql := g.GeneratePartialUpdate("users", r, []string{"id"}, []string{"id"})
	require.Empty(t, sql)
}

func TestGenerateDelete(t *testing.T) {
	d, err := sqlgen.DialectFor(engine.Postgres)
	require.NoError(t, err)
	g := sqlgen.NewGenerator(d)

	r := mkRow(row.Field{Name: "id", Value: row.Number(1)})
	sql := g.GenerateDelete("users", r, []string{"id"})
	require.Equal(t, `DELETE FROM "users" WHERE "id" = 1;`, sql)
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestPrepareRowForInsert_SkipsWhenRequiredColumnMissing(t *testing.T) {
	target := schema.TableInfo{
		TableName: "t",
		Columns: []schema.ColumnInfo{
			{Name: "id", IsNullable: false, DefaultValue: strPtr("seq")},
			{Name: "name", MaxLength: intPtr(10), IsNullable: false},
			{Name: "slug", MaxLength: intPtr(100), IsNullable: false},
		},
	}
	r := mkRow(
		row.Field{Name: "id", Value: row.Number(1)},
		row.Field{Name: "name", Value: row.String("A very long name")},
	)

	_, warnings, ok := sqlgen.PrepareRowForInsert(r, target)
	require.False(t, ok)
	require.Condition(t, func() bool {
		for _, w := range warnings {
			if strings.Contains(w, "slug") {
				return true
			}
		}
		return false
	})
}

func TestPrepareRowForInsert_TruncatesAndSucceedsWhenNullable(t *testing.T) {
	target := schema.TableInfo{
		TableName: "t",
		Columns: []schema.ColumnInfo{
			{Name: "id", IsNullable: false, DefaultValue: strPtr("seq")},
			{Name: "name", MaxLength: intPtr(10), IsNullable: false},
			{Name: "slug", MaxLength: intPtr(100), IsNullable: true},
		},
	}
	r := mkRow(
		row.Field{Name: "id", Value: row.Number(1)},
		row.Field{Name: "name", Value: row.String("A very long name")},
	)

	prepared, _, ok := sqlgen.PrepareRowForInsert(r, target)
	require.True(t, ok)
	v, _ := prepared.Get("name")
	require.Equal(t, "A very lon", v.Str)
}
