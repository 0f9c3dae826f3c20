package cxtype

import (
	"fmt"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

// clickhouseRules maps ClickHouse's native type names. ClickHouse
// spells nullability and arrays as type constructors (Nullable(T),
// Array(T)) rather than suffixes, so both are handled as named cases
// that recurse into the wrapped type.
type clickhouseRules struct{}

func (r clickhouseRules) toCanonical(p parsedNative, opts Options) CanonicalType {
	switch p.Name {
	case "BOOL", "BOOLEAN":
		return Simple(Boolean)
	case "INT8":
		return Simple(TinyInt)
	case "UINT8":
		return Simple(TinyInt)
	case "INT16", "UINT16":
		return Simple(SmallInt)
	case "INT32", "UINT32":
		return Simple(Int)
	case "INT64", "UINT64":
		return Simple(BigInt)
	case "FLOAT32":
		return Simple(Float)
	case "FLOAT64":
		return Simple(Double)
	case "DECIMAL", "DECIMAL32", "DECIMAL64", "DECIMAL128", "DECIMAL256":
		prec, hasPrec := p.IntParam(0)
		scale, hasScale := p.IntParam(1)
		if !hasPrec {
			d := opts.decimalDefault(engine.ClickHouse)
			return NewDecimal(d.Precision, d.Scale)
		}
		if !hasScale {
			scale = 0
		}
		return NewDecimal(uint8(prec), uint8(scale))
	case "STRING":
		return Simple(Text)
	case "FIXEDSTRING":
		n, ok := p.IntParam(0)
		if !ok {
			n = 1
		}
		return NewChar(n)
	case "UUID":
		return Simple(Uuid)
	case "DATE", "DATE32":
		return Simple(Date)
	case "DATETIME":
		return Simple(DateTime)
	case "DATETIME64":
		return Simple(Timestamp)
	case "NULLABLE":
		if len(p.Params) == 1 {
			return r.toCanonical(parseNative(p.Params[0]), opts)
		}
		return NewUnknown(p.Name)
	case "ARRAY":
		if len(p.Params) == 1 {
			elem := r.toCanonical(parseNative(p.Params[0]), opts)
			return NewArray(elem)
		}
		return NewArray(Simple(Json))
	case "JSON", "OBJECT":
		return Simple(Json)
	default:
		return NewUnknown(p.Name)
	}
}

func (clickhouseRules) fromCanonical(t CanonicalType) string {
	switch t.Kind {
	case Boolean:
		return "Bool"
	case TinyInt:
		return "Int8"
	case SmallInt:
		return "Int16"
	case Int:
		return "Int32"
	case BigInt:
		return "Int64"
	case Float:
		return "Float32"
	case Double:
		return "Float64"
	case Decimal:
		return fmt.Sprintf("Decimal(%d,%d)", t.Precision, t.Scale)
	case Char, Varchar, NChar, NVarchar, Text, NText:
		return "String"
	case Blob, Binary, Varbinary:
		return "String"
	case Date:
		return "Date"
	case DateTime:
		return "DateTime"
	case Timestamp:
		return "DateTime64(3)"
	case Uuid:
		return "UUID"
	case Json:
		return "String"
	case ArrayKind:
		if t.Of == nil {
			return "Array(String)"
		}
		return "Array(" + (clickhouseRules{}).fromCanonical(*t.Of) + ")"
	case Unknown:
		if t.Original != "" {
			return t.Original
		}
		return "String"
	default:
		return "String"
	}
}
