package cxtype

import "fmt"

// Kind discriminates the variant carried by a CanonicalType.
type Kind string

const (
	Boolean   Kind = "Boolean"
	TinyInt   Kind = "TinyInt"
	SmallInt  Kind = "SmallInt"
	Int       Kind = "Int"
	BigInt    Kind = "BigInt"
	Float     Kind = "Float"
	Double    Kind = "Double"
	Decimal   Kind = "Decimal"
	Char      Kind = "Char"
	Varchar   Kind = "Varchar"
	Text      Kind = "Text"
	NChar     Kind = "NChar"
	NVarchar  Kind = "NVarchar"
	NText     Kind = "NText"
	Binary    Kind = "Binary"
	Varbinary Kind = "Varbinary"
	Blob      Kind = "Blob"
	Date      Kind = "Date"
	Time      Kind = "Time"
	DateTime  Kind = "DateTime"
	Timestamp Kind = "Timestamp"
	Uuid      Kind = "Uuid"
	Json      Kind = "Json"
	Xml       Kind = "Xml"
	ArrayKind Kind = "Array"
	Unknown   Kind = "Unknown"
)

// CanonicalType is the engine-independent type label used as the
// interchange between per-engine parsers and renderers.
//
// Only the fields relevant to Kind are meaningful: Precision/Scale for
// Decimal, Length for the character/binary families, Of for Array, and
// Original for Unknown.
//
// Example:
//
//	t := cxtype.NewDecimal(10, 2)
//	native, _ := cxtype.FromCanonical(engine.Postgres, t) // "numeric(10,2)"
type CanonicalType struct {
	Kind      Kind
	Precision uint8
	Scale     uint8
	Length    int // -1 means unbounded/unspecified
	Of        *CanonicalType
	Original  string
}

// NewDecimal builds a Decimal type, clamping scale down to precision if
// a caller violates the invariant scale <= precision rather than
// producing an invalid value.
func NewDecimal(precision, scale uint8) CanonicalType {
	if scale > precision {
		scale = precision
	}
	return CanonicalType{Kind: Decimal, Precision: precision, Scale: scale}
}

// NewChar, NewVarchar, ... build the length-bearing character/binary
// variants. A negative length means unbounded/unspecified.
func NewChar(length int) CanonicalType      { return CanonicalType{Kind: Char, Length: length} }
func NewVarchar(length int) CanonicalType   { return CanonicalType{Kind: Varchar, Length: length} }
func NewNChar(length int) CanonicalType     { return CanonicalType{Kind: NChar, Length: length} }
func NewNVarchar(length int) CanonicalType  { return CanonicalType{Kind: NVarchar, Length: length} }
func NewBinary(length int) CanonicalType    { return CanonicalType{Kind: Binary, Length: length} }
func NewVarbinary(length int) CanonicalType { return CanonicalType{Kind: Varbinary, Length: length} }

// NewArray wraps an element type.
func NewArray(of CanonicalType) CanonicalType {
	return CanonicalType{Kind: ArrayKind, Of: &of}
}

// NewUnknown preserves a native string that no engine rule recognized.
func NewUnknown(original string) CanonicalType {
	return CanonicalType{Kind: Unknown, Original: original}
}

// Simple builds a parameterless variant (Boolean, TinyInt, ..., Uuid,
// Json, Xml, Text, NText, Blob, Date, Time, DateTime, Timestamp).
func Simple(k Kind) CanonicalType { return CanonicalType{Kind: k} }

// Equal compares two canonical types structurally.
func (t CanonicalType) Equal(other CanonicalType) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Decimal:
		return t.Precision == other.Precision && t.Scale == other.Scale
	case Char, Varchar, NChar, NVarchar, Binary, Varbinary:
		return t.Length == other.Length
	case ArrayKind:
		if t.Of == nil || other.Of == nil {
			return t.Of == other.Of
		}
		return t.Of.Equal(*other.Of)
	case Unknown:
		return t.Original == other.Original
	default:
		return true
	}
}

// String renders a debug form, not a native type string (use
// FromCanonical for that).
func (t CanonicalType) String() string {
	switch t.Kind {
	case Decimal:
		return fmt.Sprintf("Decimal(%d,%d)", t.Precision, t.Scale)
	case Char, Varchar, NChar, NVarchar, Binary, Varbinary:
		if t.Length < 0 {
			return string(t.Kind)
		}
		return fmt.Sprintf("%s(%d)", t.Kind, t.Length)
	case ArrayKind:
		if t.Of == nil {
			return "Array(?)"
		}
		return fmt.Sprintf("Array(%s)", t.Of.String())
	case Unknown:
		return fmt.Sprintf("Unknown(%q)", t.Original)
	default:
		return string(t.Kind)
	}
}

// IsUnbounded reports whether a length-bearing type has no declared
// length (i.e. should render as the engine's "max"/text/blob variant).
func (t CanonicalType) IsUnbounded() bool {
	switch t.Kind {
	case Char, Varchar, NChar, NVarchar, Binary, Varbinary:
		return t.Length < 0
	default:
		return false
	}
}
