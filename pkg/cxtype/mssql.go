package cxtype

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

type mssqlRules struct{}

func (mssqlRules) toCanonical(p parsedNative, opts Options) CanonicalType {
	switch p.Name {
	case "BIT":
		return Simple(Boolean)
	case "TINYINT":
		return Simple(TinyInt)
	case "SMALLINT":
		return Simple(SmallInt)
	case "INT", "INTEGER":
		return Simple(Int)
	case "BIGINT":
		return Simple(BigInt)
	case "REAL":
		return Simple(Float)
	case "FLOAT":
		return Simple(Double)
	case "MONEY", "SMALLMONEY":
		return NewDecimal(19, 4)
	case "DECIMAL", "NUMERIC":
		prec, hasPrec := p.IntParam(0)
		scale, hasScale := p.IntParam(1)
		if !hasPrec {
			d := opts.decimalDefault(engine.SQLServer)
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
	case "VARCHAR":
		if p.IsMax() {
			return NewVarchar(-1)
		}
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewVarchar(n)
	case "TEXT":
		return Simple(Text)
	case "NCHAR":
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewNChar(n)
	case "NVARCHAR":
		if p.IsMax() {
			return NewNVarchar(-1)
		}
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewNVarchar(n)
	case "NTEXT":
		return Simple(NText)
	case "BINARY":
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewBinary(n)
	case "VARBINARY":
		if p.IsMax() {
			return NewVarbinary(-1)
		}
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewVarbinary(n)
	case "IMAGE":
		return Simple(Blob)
	case "DATE":
		return Simple(Date)
	case "TIME":
		return Simple(Time)
	case "DATETIME", "DATETIME2", "SMALLDATETIME":
		return Simple(DateTime)
	case "DATETIMEOFFSET":
		return Simple(Timestamp)
	case "UNIQUEIDENTIFIER":
		return Simple(Uuid)
	case "XML":
		return Simple(Xml)
	default:
		return NewUnknown(p.Name)
	}
}

func (mssqlRules) fromCanonical(t CanonicalType) string {
	switch t.Kind {
	case Boolean:
		return "bit"
	case TinyInt:
		return "tinyint"
	case SmallInt:
		return "smallint"
	case Int:
		return "int"
	case BigInt:
		return "bigint"
	case Float:
		return "real"
	case Double:
		return "float"
	case Decimal:
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	case Char:
		if t.Length < 0 {
			return "varchar(max)"
		}
		return fmt.Sprintf("char(%d)", t.Length)
	case Varchar:
		if t.Length < 0 {
			return "varchar(max)"
		}
		return fmt.Sprintf("varchar(%d)", t.Length)
	case Text:
		return "text"
	case NChar:
		if t.Length < 0 {
			return "nvarchar(max)"
		}
		return fmt.Sprintf("nchar(%d)", t.Length)
	case NVarchar:
		if t.Length < 0 {
			return "nvarchar(max)"
		}
		return fmt.Sprintf("nvarchar(%d)", t.Length)
	case NText:
		return "ntext"
	case Binary:
		if t.Length < 0 {
			return "varbinary(max)"
		}
		return fmt.Sprintf("binary(%d)", t.Length)
	case Varbinary:
		if t.Length < 0 {
			return "varbinary(max)"
		}
		return fmt.Sprintf("varbinary(%d)", t.Length)
	case Blob:
		return "image"
	case Date:
		return "date"
	case Time:
		return "time"
	case DateTime:
		return "datetime2"
	case Timestamp:
		return "datetimeoffset"
	case Uuid:
		return "uniqueidentifier"
	case Json:
		return "nvarchar(max)"
	case Xml:
		return "xml"
	case ArrayKind:
		return "nvarchar(max)"
	case Unknown:
		return strings.ToUpper(t.Original)
	default:
		return "nvarchar(max)"
	}
}
