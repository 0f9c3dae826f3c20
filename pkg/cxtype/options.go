package cxtype

import "github.com/pseudomuto/dbmig/pkg/engine"

// decimalDefault is a (precision, scale) pair.
type decimalDefault struct {
	Precision uint8
	Scale     uint8
}

// defaultDecimalDefaults is the hard-coded per-engine convention for an
// arbitrary-precision decimal declared without explicit precision: 18/0
// in general, 10/0 for MySQL and ClickHouse, 38/0 for Oracle, per the
// design notes.
var defaultDecimalDefaults = map[engine.Tag]decimalDefault{
	engine.Postgres:   {18, 0},
	engine.MySQL:      {10, 0},
	engine.SQLServer:  {18, 0},
	engine.Oracle:     {38, 0},
	engine.SQLite:     {18, 0},
	engine.MongoDB:    {18, 0},
	engine.ClickHouse: {10, 0},
}

// Options configures behavior left open by the specification. The zero
// value uses the hard-coded engine conventions.
type Options struct {
	// DefaultDecimalPrecisionScale overrides the (precision, scale)
	// used for an engine's bare, unparameterized decimal type. Keys
	// absent from the map fall back to the built-in convention. For
	// MongoDB only the scale is taken: its decimal128 precision is
	// always 34.
	DefaultDecimalPrecisionScale map[engine.Tag][2]uint8
}

func (o Options) decimalDefault(tag engine.Tag) decimalDefault {
	if o.DefaultDecimalPrecisionScale != nil {
		if ps, ok := o.DefaultDecimalPrecisionScale[tag]; ok {
			return decimalDefault{Precision: ps[0], Scale: ps[1]}
		}
	}
	if d, ok := defaultDecimalDefaults[tag]; ok {
		return d
	}
	return decimalDefault{Precision: 18, Scale: 0}
}
