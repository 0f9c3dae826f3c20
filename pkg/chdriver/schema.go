package chdriver

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/schema"
)

// systemDatabases are excluded from schema introspection: they're
// managed by ClickHouse itself, not user schema.
var systemDatabases = []string{"system", "information_schema", "INFORMATION_SCHEMA"}

func systemDatabaseExclusion(column string) (string, []any) {
	placeholders := make([]string, len(systemDatabases))
	params := make([]any, len(systemDatabases))
	for i, db := range systemDatabases {
		placeholders[i] = "?"
		params[i] = db
	}
	return column + " NOT IN (" + strings.Join(placeholders, ", ") + ")", params
}

// GetTables lists every non-system, non-temporary table visible to the
// connection, across every database.
func (c *Client) GetTables(ctx context.Context) ([]string, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}

	condition, params := systemDatabaseExclusion("database")
	query := `
		SELECT name
		FROM system.tables
		WHERE ` + condition + `
		  AND is_temporary = 0
		  AND engine NOT IN ('View', 'MaterializedView')
		ORDER BY database, name
	`

	rows, err := conn.Query(ctx, query, params...)
	if err != nil {
		return nil, errors.Wrapf(engine.ErrDriver, "list tables: %s", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrapf(engine.ErrDriver, "scan table name: %s", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(engine.ErrDriver, "iterate tables: %s", err)
	}
	return names, nil
}

// GetTableInfo describes a single table's columns and primary key.
// ClickHouse has no foreign-key constraints, so Constraints only ever
// carries a PrimaryKey entry (when the table declares one).
func (c *Client) GetTableInfo(ctx context.Context, name string) (*schema.TableInfo, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, `
		SELECT
			name,
			type,
			CASE WHEN position(type, 'Nullable(') = 1 THEN 1 ELSE 0 END AS is_nullable,
			is_in_primary_key,
			position,
			default_expression
		FROM system.columns
		WHERE table = ?
		ORDER BY position
	`, name)
	if err != nil {
		return nil, errors.Wrapf(engine.ErrDriver, "describe %q: %s", name, err)
	}
	defer rows.Close()

	info := &schema.TableInfo{TableName: name}
	var pkCols []string

	for rows.Next() {
		var (
			colName, dataType, defaultExpr string
			isNullable, isPK               uint8
			position                       int
		)
		if err := rows.Scan(&colName, &dataType, &isNullable, &isPK, &position, &defaultExpr); err != nil {
			return nil, errors.Wrapf(engine.ErrDriver, "scan column of %q: %s", name, err)
		}

		col := schema.ColumnInfo{
			Name:            colName,
			DataType:        dataType,
			IsNullable:      isNullable == 1,
			IsPrimaryKey:    isPK == 1,
			OrdinalPosition: position,
		}
		if defaultExpr != "" {
			col.DefaultValue = &defaultExpr
		}
		info.Columns = append(info.Columns, col)

		if isPK == 1 {
			pkCols = append(pkCols, colName)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(engine.ErrDriver, "iterate columns of %q: %s", name, err)
	}

	if len(info.Columns) == 0 {
		return nil, errors.Wrapf(engine.ErrDriver, "table %q not found", name)
	}

	if len(pkCols) > 0 {
		info.Constraints = append(info.Constraints, schema.ConstraintInfo{
			Name:           name + "_pk",
			ConstraintType: schema.ConstraintPrimaryKey,
			Columns:        pkCols,
		})
	}

	return info, nil
}

// GetSchema describes every table visible to the connection.
func (c *Client) GetSchema(ctx context.Context) (*schema.SchemaInfo, error) {
	names, err := c.GetTables(ctx)
	if err != nil {
		return nil, err
	}

	out := &schema.SchemaInfo{}
	for _, name := range names {
		ti, err := c.GetTableInfo(ctx, name)
		if err != nil {
			return nil, err
		}
		out.Tables = append(out.Tables, *ti)
	}
	return out, nil
}

// GetRowCount returns the number of rows in a table.
func (c *Client) GetRowCount(ctx context.Context, table string) (int64, error) {
	conn, err := c.connection()
	if err != nil {
		return 0, err
	}

	var n uint64
	if err := conn.QueryRow(ctx, "SELECT count() FROM `"+strings.ReplaceAll(table, "`", "``")+"`").Scan(&n); err != nil {
		return 0, errors.Wrapf(engine.ErrDriver, "count %q: %s", table, err)
	}
	return int64(n), nil
}
