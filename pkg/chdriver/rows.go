package chdriver

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/shopspring/decimal"
)

// GetRows streams a table's rows as row.Row values. Column types are
// discovered per query from the driver's reported scan types, since
// this driver has no fixed, compile-time row shape to scan into.
func (c *Client) GetRows(ctx context.Context, table string, limit, offset *int) (row.RowSet, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}

	query := "SELECT * FROM `" + strings.ReplaceAll(table, "`", "``") + "`"
	if limit != nil {
		query += fmt.Sprintf(" LIMIT %d", *limit)
	}
	if offset != nil {
		query += fmt.Sprintf(" OFFSET %d", *offset)
	}

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(engine.ErrDriver, "select %q: %s", table, err)
	}
	defer rows.Close()

	colNames := rows.Columns()
	colTypes := rows.ColumnTypes()
	scanTargets := make([]any, len(colTypes))

	var out row.RowSet
	for rows.Next() {
		for i, ct := range colTypes {
			scanTargets[i] = reflect.New(ct.ScanType()).Interface()
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, errors.Wrapf(engine.ErrDriver, "scan row of %q: %s", table, err)
		}

		fields := make([]row.Field, len(colNames))
		for i, name := range colNames {
			fields[i] = row.Field{Name: name, Value: valueFromScanned(scanTargets[i])}
		}
		out = append(out, row.NewRow(fields...))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(engine.ErrDriver, "iterate rows of %q: %s", table, err)
	}
	return out, nil
}

// valueFromScanned converts a value Scan populated (always a pointer,
// since GetRows allocates scan targets via reflect.New) into a row.Value,
// peeling away the pointer indirection ClickHouse's Nullable(T) columns
// introduce.
func valueFromScanned(scanned any) row.Value {
	rv := reflect.ValueOf(scanned)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return row.Null()
		}
		rv = rv.Elem()
	}
	return valueFromReflect(rv)
}

func valueFromReflect(rv reflect.Value) row.Value {
	if t, ok := rv.Interface().(time.Time); ok {
		return row.String(t.UTC().Format(time.RFC3339Nano))
	}
	if u, ok := rv.Interface().(uuid.UUID); ok {
		return row.String(u.String())
	}
	if d, ok := rv.Interface().(decimal.Decimal); ok {
		return row.Number(mustFloat(d.String()))
	}

	switch rv.Kind() {
	case reflect.Bool:
		return row.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return row.Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return row.Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return row.Number(rv.Float())
	case reflect.String:
		return row.String(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return row.String(string(rv.Bytes()))
		}
		items := make([]row.Value, rv.Len())
		for i := range items {
			items[i] = valueFromReflect(rv.Index(i))
		}
		return row.Array(items...)
	default:
		return row.String(fmt.Sprintf("%v", rv.Interface()))
	}
}

func mustFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
