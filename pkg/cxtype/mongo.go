package cxtype

import (
	"strings"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

// mongoRules maps BSON type names (as reported by $jsonSchema / the
// aggregation $type operator) to and from the canonical model. Mongo
// has no notion of declared length or precision beyond decimal128, so
// most variants round-trip through a fixed representative name.
type mongoRules struct{}

func (mongoRules) toCanonical(p parsedNative, opts Options) CanonicalType {
	switch p.Name {
	case "BOOL", "BOOLEAN":
		return Simple(Boolean)
	case "INT", "INT32":
		return Simple(Int)
	case "LONG", "INT64":
		return Simple(BigInt)
	case "DOUBLE":
		return Simple(Double)
	case "DECIMAL128", "DECIMAL":
		d := opts.decimalDefault(engine.MongoDB)
		return NewDecimal(34, d.Scale)
	case "STRING":
		return Simple(Text)
	case "OBJECT", "DOCUMENT":
		return Simple(Json)
	case "ARRAY":
		return NewArray(Simple(Json))
	case "BINDATA", "BINARY":
		return Simple(Blob)
	case "OBJECTID":
		return Simple(Uuid)
	case "BOOL_DATE", "DATE":
		return Simple(DateTime)
	case "TIMESTAMP":
		return Simple(Timestamp)
	case "REGEX", "JAVASCRIPT", "SYMBOL", "NULL", "UNDEFINED":
		return Simple(Text)
	default:
		return NewUnknown(p.Name)
	}
}

func (mongoRules) fromCanonical(t CanonicalType) string {
	switch t.Kind {
	case Boolean:
		return "bool"
	case TinyInt, SmallInt, Int:
		return "int"
	case BigInt:
		return "long"
	case Float, Double:
		return "double"
	case Decimal:
		return "decimal128"
	case Char, Varchar, NChar, NVarchar, Text, NText, Xml:
		return "string"
	case Uuid:
		return "objectId"
	case Json:
		return "object"
	case ArrayKind:
		return "array"
	case Binary, Varbinary, Blob:
		return "binData"
	case Date, DateTime:
		return "date"
	case Time:
		return "string"
	case Timestamp:
		return "timestamp"
	case Unknown:
		return strings.ToLower(t.Original)
	default:
		return "string"
	}
}
