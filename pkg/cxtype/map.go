package cxtype

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/engine"
)

// engineRules is implemented once per supported engine and captures
// the entire native<->canonical mapping for that engine.
type engineRules interface {
	toCanonical(p parsedNative, opts Options) CanonicalType
	fromCanonical(t CanonicalType) string
}

var registry = map[engine.Tag]engineRules{
	engine.Postgres:   postgresRules{},
	engine.MySQL:      mysqlRules{},
	engine.SQLServer:  mssqlRules{},
	engine.Oracle:     oracleRules{},
	engine.SQLite:     sqliteRules{},
	engine.MongoDB:    mongoRules{},
	engine.ClickHouse: clickhouseRules{},
}

// ErrUnsupportedEngine is returned when a tag has no registered rules.
var ErrUnsupportedEngine = errors.New("cxtype: unsupported engine")

// ToCanonical parses an engine-native type string (e.g. "varchar(255)",
// "NUMBER(10,2)", "double") into its canonical representation.
func ToCanonical(tag engine.Tag, native string, opts Options) (CanonicalType, error) {
	rules, ok := registry[tag]
	if !ok {
		return CanonicalType{}, errors.Wrapf(ErrUnsupportedEngine, "engine %q", tag)
	}
	return rules.toCanonical(parseNative(native), opts), nil
}

// FromCanonical renders a canonical type back into a given engine's
// native syntax.
func FromCanonical(tag engine.Tag, t CanonicalType) (string, error) {
	rules, ok := registry[tag]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedEngine, "engine %q", tag)
	}
	return rules.fromCanonical(t), nil
}

// MapType converts a native type string from one engine's syntax to
// another's, by round-tripping it through the canonical model.
func MapType(fromTag engine.Tag, native string, toTag engine.Tag, opts Options) (string, error) {
	canon, err := ToCanonical(fromTag, native, opts)
	if err != nil {
		return "", err
	}
	return FromCanonical(toTag, canon)
}

// Warning describes a single respect in which a type mapping lost
// information, or a respect in which it changed representation without
// losing information. IsLossy distinguishes the two: a narrowed decimal
// or a date collapsed into text sets IsLossy true, while a Json or Uuid
// rendered as text on an engine with no native equivalent is merely an
// advisory and sets IsLossy false.
type Warning struct {
	Kind    string
	Message string
	IsLossy bool
}

// MapTypeWithWarnings behaves like MapType but additionally detects
// lossiness by round-tripping the produced native string back through
// ToCanonical for the target engine and classifying the before/after
// canonical pair against the documented lossiness rules: a Decimal
// narrowed to Float/Double, a Decimal narrowed in precision or scale, a
// BigInt narrowed to Int, a date/time type collapsed to text, or a
// unicode text type downgraded to non-unicode text are all lossy;
// Json/Uuid rendered as text is a non-lossy advisory.
func MapTypeWithWarnings(fromTag engine.Tag, native string, toTag engine.Tag, opts Options) (string, []Warning, error) {
	canon, err := ToCanonical(fromTag, native, opts)
	if err != nil {
		return "", nil, err
	}
	rendered, err := FromCanonical(toTag, canon)
	if err != nil {
		return "", nil, err
	}

	roundTripped, err := ToCanonical(toTag, rendered, opts)
	if err != nil {
		return "", nil, err
	}

	var warnings []Warning
	if w := compareLossiness(canon, roundTripped); w != nil {
		warnings = append(warnings, *w)
	}
	return rendered, warnings, nil
}

// compareLossiness inspects a before/after canonical pair produced by a
// round trip and classifies the difference, if any, against the fixed
// case table below. It returns nil when the round trip is exact.
func compareLossiness(before, after CanonicalType) *Warning {
	if before.Equal(after) {
		return nil
	}

	switch {
	// (a) Decimal -> Float/Double
	case before.Kind == Decimal && (after.Kind == Float || after.Kind == Double):
		return &Warning{
			Kind:    "decimal-to-float",
			Message: fmt.Sprintf("decimal(%d,%d) narrowed to %s", before.Precision, before.Scale, after.Kind),
			IsLossy: true,
		}

	// (b) Decimal(p,s) -> Decimal(p',s') with p'<p or s'<s
	case before.Kind == Decimal && after.Kind == Decimal &&
		(after.Precision < before.Precision || after.Scale < before.Scale):
		return &Warning{
			Kind: "precision-narrowed",
			Message: fmt.Sprintf("decimal(%d,%d) narrowed to decimal(%d,%d)",
				before.Precision, before.Scale, after.Precision, after.Scale),
			IsLossy: true,
		}

	// (c) BigInt -> Int
	case before.Kind == BigInt && after.Kind == Int:
		return &Warning{
			Kind:    "bigint-narrowed",
			Message: "BigInt narrowed to Int",
			IsLossy: true,
		}

	// (d) date/time -> text
	case isDateOrTime(before.Kind) && isTextLike(after.Kind):
		return &Warning{
			Kind:    "datetime-to-text",
			Message: fmt.Sprintf("%s collapsed to %s", before.Kind, after.Kind),
			IsLossy: true,
		}

	// (e) unicode text -> non-unicode text
	case IsUnicodeText(before.Kind) && isTextLike(after.Kind) && !IsUnicodeText(after.Kind):
		return &Warning{
			Kind:    "unicode-downgraded",
			Message: fmt.Sprintf("%s downgraded to non-unicode %s", before.Kind, after.Kind),
			IsLossy: true,
		}

	// Json/Uuid rendered as text: representation changes, nothing is lost.
	case (before.Kind == Json || before.Kind == Uuid) && isTextLike(after.Kind):
		return &Warning{
			Kind:    "rendered-as-text",
			Message: fmt.Sprintf("%s has no native equivalent; rendered as %s", before.Kind, after.Kind),
			IsLossy: false,
		}

	case before.Kind != after.Kind:
		return &Warning{
			Kind:    "kind-change",
			Message: fmt.Sprintf("%s narrowed to %s", before.Kind, after.Kind),
			IsLossy: true,
		}
	case isLengthBearing(before.Kind):
		return &Warning{
			Kind:    "length-narrowed",
			Message: fmt.Sprintf("%s(%d) narrowed to %s(%d)", before.Kind, before.Length, after.Kind, after.Length),
			IsLossy: true,
		}
	case before.Kind == ArrayKind:
		return &Warning{
			Kind:    "array-flattened",
			Message: "array element type not preserved across engines",
			IsLossy: true,
		}
	case before.Kind == Unknown:
		return &Warning{
			Kind:    "unknown-type",
			Message: fmt.Sprintf("native type %q has no canonical equivalent", before.Original),
			IsLossy: true,
		}
	default:
		return &Warning{
			Kind:    "value-changed",
			Message: fmt.Sprintf("%s round-trip did not preserve the original value", before.Kind),
			IsLossy: true,
		}
	}
}

func isDateOrTime(k Kind) bool {
	switch k {
	case Date, Time, DateTime, Timestamp:
		return true
	default:
		return false
	}
}

func isTextLike(k Kind) bool {
	switch k {
	case Char, Varchar, Text, NChar, NVarchar, NText:
		return true
	default:
		return false
	}
}

func isLengthBearing(k Kind) bool {
	switch k {
	case Char, Varchar, NChar, NVarchar, Binary, Varbinary:
		return true
	default:
		return false
	}
}

// IsUnicodeText reports whether a kind distinguishes unicode-capable
// text (NChar/NVarchar/NText) from its non-unicode counterpart.
func IsUnicodeText(k Kind) bool {
	switch k {
	case NChar, NVarchar, NText:
		return true
	default:
		return false
	}
}
