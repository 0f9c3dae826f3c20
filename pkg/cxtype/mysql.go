package cxtype

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

type mysqlRules struct{}

func (mysqlRules) toCanonical(p parsedNative, opts Options) CanonicalType {
	switch p.Name {
	case "BOOLEAN", "BOOL":
		return Simple(Boolean)
	case "TINYINT":
		n, ok := p.IntParam(0)
		if ok && n == 1 {
			return Simple(Boolean)
		}
		return Simple(TinyInt)
	case "SMALLINT":
		return Simple(SmallInt)
	case "MEDIUMINT", "INT", "INTEGER":
		return Simple(Int)
	case "BIGINT":
		return Simple(BigInt)
	case "FLOAT":
		return Simple(Float)
	case "DOUBLE", "DOUBLE PRECISION", "REAL":
		return Simple(Double)
	case "DECIMAL", "NUMERIC", "DEC":
		prec, hasPrec := p.IntParam(0)
		scale, hasScale := p.IntParam(1)
		if !hasPrec {
			d := opts.decimalDefault(engine.MySQL)
			return NewDecimal(d.Precision, d.Scale)
		}
		if !hasScale {
			scale = 0
		}
		return NewDecimal(uint8(prec), uint8(scale))
	case "CHAR":
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewChar(n)
	case "NCHAR":
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewNChar(n)
	case "VARCHAR":
		n, ok := p.IntParam(0)
		if !ok {
			return NewVarchar(-1)
		}
		return NewVarchar(n)
	case "NVARCHAR":
		n, ok := p.IntParam(0)
		if !ok {
			return NewNVarchar(-1)
		}
		return NewNVarchar(n)
	case "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT":
		return Simple(Text)
	case "BINARY":
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewBinary(n)
	case "VARBINARY":
		n, ok := p.IntParam(0)
		if !ok {
			return NewVarbinary(-1)
		}
		return NewVarbinary(n)
	case "TINYBLOB", "BLOB", "MEDIUMBLOB", "LONGBLOB":
		return Simple(Blob)
	case "DATE":
		return Simple(Date)
	case "TIME":
		return Simple(Time)
	case "DATETIME":
		return Simple(DateTime)
	case "TIMESTAMP":
		return Simple(Timestamp)
	case "JSON":
		return Simple(Json)
	default:
		return NewUnknown(p.Name)
	}
}

func (mysqlRules) fromCanonical(t CanonicalType) string {
	switch t.Kind {
	case Boolean:
		return "tinyint(1)"
	case TinyInt:
		return "tinyint"
	case SmallInt:
		return "smallint"
	case Int:
		return "int"
	case BigInt:
		return "bigint"
	case Float:
		return "float"
	case Double:
		return "double"
	case Decimal:
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	case Char:
		if t.Length < 0 {
			return "text"
		}
		return fmt.Sprintf("char(%d)", t.Length)
	case NChar:
		if t.Length < 0 {
			return "text"
		}
		return fmt.Sprintf("nchar(%d)", t.Length)
	case Varchar:
		if t.Length < 0 {
			return "longtext"
		}
		return fmt.Sprintf("varchar(%d)", t.Length)
	case NVarchar:
		if t.Length < 0 {
			return "longtext"
		}
		return fmt.Sprintf("nvarchar(%d)", t.Length)
	case Text, NText:
		return "longtext"
	case Binary:
		if t.Length < 0 {
			return "blob"
		}
		return fmt.Sprintf("binary(%d)", t.Length)
	case Varbinary:
		if t.Length < 0 {
			return "blob"
		}
		return fmt.Sprintf("varbinary(%d)", t.Length)
	case Blob:
		return "longblob"
	case Date:
		return "date"
	case Time:
		return "time"
	case DateTime, Timestamp:
		return "datetime"
	case Uuid:
		return "char(36)"
	case Json:
		return "json"
	case Xml:
		return "text"
	case ArrayKind:
		return "json"
	case Unknown:
		return strings.ToLower(t.Original)
	default:
		return "text"
	}
}
