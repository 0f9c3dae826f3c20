package cxtype

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

type oracleRules struct{}

func (oracleRules) toCanonical(p parsedNative, opts Options) CanonicalType {
	switch p.Name {
	case "NUMBER":
		prec, hasPrec := p.IntParam(0)
		scale, hasScale := p.IntParam(1)
		if !hasPrec {
			d := opts.decimalDefault(engine.Oracle)
			return NewDecimal(d.Precision, d.Scale)
		}
		if hasPrec && prec == 1 && (!hasScale || scale == 0) {
			return Simple(Boolean)
		}
		if !hasScale || scale == 0 {
			switch {
			case prec <= 4:
				return Simple(SmallInt)
			case prec <= 9:
				return Simple(Int)
			case prec <= 18:
				return Simple(BigInt)
			default:
				return NewDecimal(uint8(prec), 0)
			}
		}
		return NewDecimal(uint8(prec), uint8(scale))
	case "BINARY_FLOAT":
		return Simple(Float)
	case "BINARY_DOUBLE", "FLOAT":
		return Simple(Double)
	case "VARCHAR2", "VARCHAR":
		n, ok := p.IntParam(0)
		if !ok {
			return NewVarchar(-1)
		}
		return NewVarchar(n)
	case "NVARCHAR2":
		n, ok := p.IntParam(0)
		if !ok {
			return NewNVarchar(-1)
		}
		return NewNVarchar(n)
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
	case "CLOB":
		return Simple(Text)
	case "NCLOB":
		return Simple(NText)
	case "BLOB":
		return Simple(Blob)
	case "RAW":
		n, ok := p.IntParam(0)
		if !ok {
			return NewVarbinary(-1)
		}
		return NewVarbinary(n)
	case "LONG":
		return Simple(Text)
	case "DATE":
		return Simple(DateTime)
	case "TIMESTAMP", "TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITH LOCAL TIME ZONE":
		return Simple(Timestamp)
	case "XMLTYPE":
		return Simple(Xml)
	default:
		return NewUnknown(p.Name)
	}
}

func (oracleRules) fromCanonical(t CanonicalType) string {
	switch t.Kind {
	case Boolean:
		return "number(1)"
	case TinyInt:
		return "number(3)"
	case SmallInt:
		return "number(4)"
	case Int:
		return "number(9)"
	case BigInt:
		return "number(18)"
	case Float:
		return "binary_float"
	case Double:
		return "binary_double"
	case Decimal:
		return fmt.Sprintf("number(%d,%d)", t.Precision, t.Scale)
	case Char, NChar:
		if t.Length < 0 {
			return "varchar2(2000)"
		}
		return fmt.Sprintf("char(%d)", t.Length)
	case Varchar:
		if t.Length < 0 {
			return "clob"
		}
		return fmt.Sprintf("varchar2(%d)", t.Length)
	case NVarchar:
		if t.Length < 0 {
			return "nclob"
		}
		return fmt.Sprintf("nvarchar2(%d)", t.Length)
	case Text:
		return "clob"
	case NText:
		return "nclob"
	case Binary, Varbinary:
		if t.Length < 0 {
			return "blob"
		}
		return fmt.Sprintf("raw(%d)", t.Length)
	case Blob:
		return "blob"
	case Date:
		return "date"
	case Time:
		return "varchar2(16)"
	case DateTime:
		return "date"
	case Timestamp:
		return "timestamp with time zone"
	case Uuid:
		return "varchar2(36)"
	case Json:
		return "clob"
	case Xml:
		return "xmltype"
	case ArrayKind:
		return "clob"
	case Unknown:
		return strings.ToUpper(t.Original)
	default:
		return "varchar2(4000)"
	}
}
