package cxtype

import (
	"strings"

	"github.com/pseudomuto/dbmig/pkg/engine"
)

// sqliteRules implements SQLite's type-affinity rules: the declared
// type name is matched by substring against a fixed set of patterns,
// and anything else is otherwise ignored (SQLite itself discards
// length/precision parameters entirely - they are accepted but not
// enforced).
type sqliteRules struct{}

func (sqliteRules) toCanonical(p parsedNative, opts Options) CanonicalType {
	name := p.Name
	switch {
	case strings.Contains(name, "INT"):
		return Simple(BigInt)
	case strings.Contains(name, "CHAR"), strings.Contains(name, "CLOB"), strings.Contains(name, "TEXT"):
		return Simple(Text)
	case strings.Contains(name, "BLOB"), name == "":
		return Simple(Blob)
	case strings.Contains(name, "REAL"), strings.Contains(name, "FLOA"), strings.Contains(name, "DOUB"):
		return Simple(Double)
	default:
		d := opts.decimalDefault(engine.SQLite)
		return NewDecimal(d.Precision, d.Scale)
	}
}

func (sqliteRules) fromCanonical(t CanonicalType) string {
	switch t.Kind {
	case Boolean, TinyInt, SmallInt, Int, BigInt:
		return "INTEGER"
	case Float, Double:
		return "REAL"
	case Char, Varchar, Text, NChar, NVarchar, NText, Uuid, Json, Xml, Date, Time, DateTime, Timestamp:
		return "TEXT"
	case Binary, Varbinary, Blob:
		return "BLOB"
	case Decimal:
		return "NUMERIC"
	case ArrayKind:
		return "TEXT"
	case Unknown:
		return strings.ToUpper(t.Original)
	default:
		return "NUMERIC"
	}
}
