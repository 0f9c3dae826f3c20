package cxtype

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

type postgresRules struct{}

func (postgresRules) toCanonical(p parsedNative, opts Options) CanonicalType {
	if p.IsArray {
		elem := postgresRules{}.toCanonical(parsedNative{Name: p.Name, Params: p.Params}, opts)
		return NewArray(elem)
	}

	switch p.Name {
	case "BOOLEAN", "BOOL":
		return Simple(Boolean)
	case "SMALLINT", "INT2", "SMALLSERIAL", "SERIAL2":
		return Simple(SmallInt)
	case "INTEGER", "INT", "INT4", "SERIAL", "SERIAL4":
		return Simple(Int)
	case "BIGINT", "INT8", "BIGSERIAL", "SERIAL8":
		return Simple(BigInt)
	case "REAL", "FLOAT4":
		return Simple(Float)
	case "DOUBLE PRECISION", "FLOAT8":
		return Simple(Double)
	case "MONEY":
		return NewDecimal(19, 4)
	case "NUMERIC", "DECIMAL":
		prec, hasPrec := p.IntParam(0)
		scale, hasScale := p.IntParam(1)
		if !hasPrec {
			d := opts.decimalDefault(engine.Postgres)
			return NewDecimal(d.Precision, d.Scale)
		}
		if !hasScale {
			scale = 0
		}
		return NewDecimal(uint8(prec), uint8(scale))
	case "CHARACTER", "CHAR", "BPCHAR":
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewChar(n)
	case "CHARACTER VARYING", "VARCHAR":
		n, ok := p.IntParam(0)
		if !ok {
			return NewVarchar(-1)
		}
		return NewVarchar(n)
	case "TEXT":
		return Simple(Text)
	case "BYTEA":
		return Simple(Blob)
	case "DATE":
		return Simple(Date)
	case "TIME", "TIME WITHOUT TIME ZONE", "TIME WITH TIME ZONE", "TIMETZ":
		return Simple(Time)
	case "TIMESTAMP", "TIMESTAMP WITHOUT TIME ZONE":
		return Simple(DateTime)
	case "TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE":
		return Simple(Timestamp)
	case "UUID":
		return Simple(Uuid)
	case "JSON", "JSONB":
		return Simple(Json)
	case "XML":
		return Simple(Xml)
	default:
		return NewUnknown(p.Name)
	}
}

func (postgresRules) fromCanonical(t CanonicalType) string {
	switch t.Kind {
	case Boolean:
		return "boolean"
	case TinyInt, SmallInt:
		return "smallint"
	case Int:
		return "integer"
	case BigInt:
		return "bigint"
	case Float:
		return "real"
	case Double:
		return "double precision"
	case Decimal:
		return fmt.Sprintf("numeric(%d,%d)", t.Precision, t.Scale)
	case Char, NChar:
		if t.Length < 0 {
			return "text"
		}
		return fmt.Sprintf("character(%d)", t.Length)
	case Varchar, NVarchar:
		if t.Length < 0 {
			return "text"
		}
		return fmt.Sprintf("character varying(%d)", t.Length)
	case Text, NText:
		return "text"
	case Binary, Varbinary, Blob:
		return "bytea"
	case Date:
		return "date"
	case Time:
		return "time without time zone"
	case DateTime:
		return "timestamp without time zone"
	case Timestamp:
		return "timestamp with time zone"
	case Uuid:
		return "uuid"
	case Json:
		return "jsonb"
	case Xml:
		return "xml"
	case ArrayKind:
		if t.Of == nil {
			return "text[]"
		}
		return postgresRules{}.fromCanonical(*t.Of) + "[]"
	case Unknown:
		return strings.ToLower(t.Original)
	default:
		return "text"
	}
}
