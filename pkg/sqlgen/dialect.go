package sqlgen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/row"
)

// Dialect captures the one-engine-at-a-time variation in rendering a
// literal SQL statement: how an identifier is quoted, how a literal
// value is encoded, and how a boolean renders.
type Dialect interface {
	QuoteIdent(name string) string
	QuoteLiteral(v row.Value) string
	BoolLiteral(b bool) string
}

// bracketDialect quotes identifiers with square brackets (SQL Server).
type bracketDialect struct{ boolAsWord bool }

func (d bracketDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
func (d bracketDialect) BoolLiteral(b bool) string      { return boolLiteral(b, d.boolAsWord) }
func (d bracketDialect) QuoteLiteral(v row.Value) string { return quoteLiteral(v, d) }

// backtickDialect quotes identifiers with backticks (MySQL).
type backtickDialect struct{ boolAsWord bool }

func (d backtickDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
func (d backtickDialect) BoolLiteral(b bool) string      { return boolLiteral(b, d.boolAsWord) }
func (d backtickDialect) QuoteLiteral(v row.Value) string { return quoteLiteral(v, d) }

// doubleQuoteDialect quotes identifiers with double quotes (Postgres,
// Oracle, SQLite - the ANSI default).
type doubleQuoteDialect struct{ boolAsWord bool }

func (d doubleQuoteDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
func (d doubleQuoteDialect) BoolLiteral(b bool) string      { return boolLiteral(b, d.boolAsWord) }
func (d doubleQuoteDialect) QuoteLiteral(v row.Value) string { return quoteLiteral(v, d) }

func boolLiteral(b, asWord bool) string {
	if asWord {
		if b {
			return "TRUE"
		}
		return "FALSE"
	}
	if b {
		return "1"
	}
	return "0"
}

// DialectFor returns the Dialect for a supported SQL engine. Mongo has
// no SQL dialect and is not included: it isn't a target this package
// generates statements for.
func DialectFor(tag engine.Tag) (Dialect, error) {
	switch tag {
	case engine.Postgres:
		return doubleQuoteDialect{boolAsWord: true}, nil
	case engine.MySQL:
		return backtickDialect{}, nil
	case engine.SQLServer:
		return bracketDialect{}, nil
	case engine.Oracle:
		return doubleQuoteDialect{}, nil
	case engine.SQLite:
		return doubleQuoteDialect{}, nil
	case engine.ClickHouse:
		return backtickDialect{boolAsWord: true}, nil
	default:
		return nil, errors.Errorf("sqlgen: no SQL dialect for engine %q", tag)
	}
}

// quoteLiteral renders v per the literal-encoding rules shared by
// every dialect: only the boolean word form varies, via d.BoolLiteral.
func quoteLiteral(v row.Value, d Dialect) string {
	switch v.Kind {
	case row.KindNull:
		return "NULL"
	case row.KindBool:
		return d.BoolLiteral(v.Bool)
	case row.KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case row.KindString:
		return quoteString(v.Str)
	default:
		return quoteString(row.Stringify(v, row.NormalizeOptions{}))
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
