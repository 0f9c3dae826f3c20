package cxtype_test

import (
	"testing"

	"github.com/pseudomuto/dbmig/pkg/cxtype"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/stretchr/testify/require"
)

func TestToCanonical(t *testing.T) {
	tests := []struct {
		name     string
		engine   engine.Tag
		native   string
		expected cxtype.CanonicalType
	}{
		{"postgres boolean", engine.Postgres, "boolean", cxtype.Simple(cxtype.Boolean)},
		{"postgres varchar bounded", engine.Postgres, "character varying(255)", cxtype.NewVarchar(255)},
		{"postgres varchar unbounded", engine.Postgres, "text", cxtype.Simple(cxtype.Text)},
		{"postgres numeric explicit", engine.Postgres, "numeric(10,2)", cxtype.NewDecimal(10, 2)},
		{"postgres numeric bare", engine.Postgres, "numeric", cxtype.NewDecimal(18, 0)},
		{"postgres double precision", engine.Postgres, "double precision", cxtype.Simple(cxtype.Double)},
		{"postgres bigint", engine.Postgres, "bigint", cxtype.Simple(cxtype.BigInt)},

		{"mysql tinyint(1) is boolean", engine.MySQL, "tinyint(1)", cxtype.Simple(cxtype.Boolean)},
		{"mysql tinyint(4) is tinyint", engine.MySQL, "tinyint(4)", cxtype.Simple(cxtype.TinyInt)},
		{"mysql decimal bare uses mysql default", engine.MySQL, "decimal", cxtype.NewDecimal(10, 0)},
		{"mysql varchar", engine.MySQL, "varchar(191)", cxtype.NewVarchar(191)},
		{"mysql longtext", engine.MySQL, "longtext", cxtype.Simple(cxtype.Text)},

		{"mssql varchar max", engine.SQLServer, "varchar(max)", cxtype.NewVarchar(-1)},
		{"mssql nvarchar bounded", engine.SQLServer, "nvarchar(100)", cxtype.NewNVarchar(100)},
		{"mssql bit", engine.SQLServer, "bit", cxtype.Simple(cxtype.Boolean)},
		{"mssql datetimeoffset", engine.SQLServer, "datetimeoffset", cxtype.Simple(cxtype.Timestamp)},

		{"oracle number(1) is boolean", engine.Oracle, "NUMBER(1)", cxtype.Simple(cxtype.Boolean)},
		{"oracle number(4) is smallint", engine.Oracle, "NUMBER(4)", cxtype.Simple(cxtype.SmallInt)},
		{"oracle number(9) is int", engine.Oracle, "NUMBER(9)", cxtype.Simple(cxtype.Int)},
		{"oracle number(18) is bigint", engine.Oracle, "NUMBER(18)", cxtype.Simple(cxtype.BigInt)},
		{"oracle number(20) is decimal", engine.Oracle, "NUMBER(20)", cxtype.NewDecimal(20, 0)},
		{"oracle number with scale", engine.Oracle, "NUMBER(10,2)", cxtype.NewDecimal(10, 2)},
		{"oracle bare number uses oracle default", engine.Oracle, "NUMBER", cxtype.NewDecimal(38, 0)},
		{"oracle varchar2", engine.Oracle, "VARCHAR2(4000)", cxtype.NewVarchar(4000)},

		{"sqlite int affinity", engine.SQLite, "INTEGER", cxtype.Simple(cxtype.BigInt)},
		{"sqlite varchar affinity is text", engine.SQLite, "VARCHAR(255)", cxtype.Simple(cxtype.Text)},
		{"sqlite real affinity", engine.SQLite, "DOUBLE", cxtype.Simple(cxtype.Double)},
		{"sqlite blob affinity", engine.SQLite, "BLOB", cxtype.Simple(cxtype.Blob)},
		{"sqlite numeric affinity fallback", engine.SQLite, "BOOLEAN", cxtype.NewDecimal(18, 0)},

		{"mongo int32", engine.MongoDB, "int", cxtype.Simple(cxtype.Int)},
		{"mongo long", engine.MongoDB, "long", cxtype.Simple(cxtype.BigInt)},
		{"mongo string", engine.MongoDB, "string", cxtype.Simple(cxtype.Text)},
		{"mongo objectId", engine.MongoDB, "objectId", cxtype.Simple(cxtype.Uuid)},

		{"clickhouse bool", engine.ClickHouse, "Bool", cxtype.Simple(cxtype.Boolean)},
		{"clickhouse int32", engine.ClickHouse, "Int32", cxtype.Simple(cxtype.Int)},
		{"clickhouse uint64", engine.ClickHouse, "UInt64", cxtype.Simple(cxtype.BigInt)},
		{"clickhouse float64", engine.ClickHouse, "Float64", cxtype.Simple(cxtype.Double)},
		{"clickhouse decimal explicit", engine.ClickHouse, "Decimal(18,4)", cxtype.NewDecimal(18, 4)},
		{"clickhouse decimal bare uses clickhouse default", engine.ClickHouse, "Decimal", cxtype.NewDecimal(10, 0)},
		{"clickhouse string", engine.ClickHouse, "String", cxtype.Simple(cxtype.Text)},
		{"clickhouse fixedstring", engine.ClickHouse, "FixedString(16)", cxtype.NewChar(16)},
		{"clickhouse uuid", engine.ClickHouse, "UUID", cxtype.Simple(cxtype.Uuid)},
		{"clickhouse datetime64 is timestamp", engine.ClickHouse, "DateTime64", cxtype.Simple(cxtype.Timestamp)},
		{"clickhouse nullable unwraps to inner type", engine.ClickHouse, "Nullable(String)", cxtype.Simple(cxtype.Text)},
		{"clickhouse array wraps element type", engine.ClickHouse, "Array(Int32)", cxtype.NewArray(cxtype.Simple(cxtype.Int))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cxtype.ToCanonical(tt.engine, tt.native, cxtype.Options{})
			require.NoError(t, err)
			require.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestToCanonical_UnsupportedEngine(t *testing.T) {
	_, err := cxtype.ToCanonical(engine.Tag("unknown"), "int", cxtype.Options{})
	require.Error(t, err)
}

func TestFromCanonical_RoundTrip(t *testing.T) {
	// For engines whose native grammar distinguishes the full type set
	// (everyone but the affinity-typed SQLite and the BSON-typed
	// Mongo), a canonical type rendered to native syntax and re-parsed
	// must come back equal: FromCanonical is each engine's own
	// preferred rendering, so parsing it again should never itself be
	// lossy.
	engines := []engine.Tag{engine.Postgres, engine.MySQL, engine.SQLServer, engine.Oracle}
	types := []cxtype.CanonicalType{
		cxtype.Simple(cxtype.Boolean),
		cxtype.Simple(cxtype.Int),
		cxtype.Simple(cxtype.BigInt),
		cxtype.Simple(cxtype.Double),
		cxtype.NewDecimal(10, 2),
		cxtype.Simple(cxtype.Text),
		cxtype.Simple(cxtype.DateTime),
	}

	for _, eng := range engines {
		for _, typ := range types {
			t.Run(string(eng)+"/"+typ.String(), func(t *testing.T) {
				native, err := cxtype.FromCanonical(eng, typ)
				require.NoError(t, err)

				back, err := cxtype.ToCanonical(eng, native, cxtype.Options{})
				require.NoError(t, err)
				require.True(t, typ.Equal(back), "round trip via %q: expected %s, got %s", native, typ, back)
			})
		}
	}
}

func TestFromCanonical_RoundTrip_SQLiteAffinity(t *testing.T) {
	// SQLite only distinguishes five affinities, so only one
	// representative per affinity class round-trips exactly.
	types := []cxtype.CanonicalType{
		cxtype.Simple(cxtype.BigInt),
		cxtype.Simple(cxtype.Text),
		cxtype.Simple(cxtype.Blob),
		cxtype.Simple(cxtype.Double),
		cxtype.NewDecimal(18, 0),
	}
	for _, typ := range types {
		native, err := cxtype.FromCanonical(engine.SQLite, typ)
		require.NoError(t, err)
		back, err := cxtype.ToCanonical(engine.SQLite, native, cxtype.Options{})
		require.NoError(t, err)
		require.True(t, typ.Equal(back), "round trip via %q: expected %s, got %s", native, typ, back)
	}
}

func TestFromCanonical_RoundTrip_ClickHouse(t *testing.T) {
	types := []cxtype.CanonicalType{
		cxtype.Simple(cxtype.Boolean),
		cxtype.Simple(cxtype.Int),
		cxtype.Simple(cxtype.BigInt),
		cxtype.Simple(cxtype.Double),
		cxtype.NewDecimal(18, 4),
		cxtype.Simple(cxtype.Text),
		cxtype.Simple(cxtype.Uuid),
		cxtype.NewArray(cxtype.Simple(cxtype.Int)),
	}
	for _, typ := range types {
		native, err := cxtype.FromCanonical(engine.ClickHouse, typ)
		require.NoError(t, err)
		back, err := cxtype.ToCanonical(engine.ClickHouse, native, cxtype.Options{})
		require.NoError(t, err)
		require.True(t, typ.Equal(back), "round trip via %q: expected %s, got %s", native, typ, back)
	}
}

func TestToCanonical_ClickHouseNestedDecimalDegradesToUnknown(t *testing.T) {
	// Nullable(Decimal(18,2)) has nested parentheses the native grammar's
	// paramList (Number|Ident only) can't parse, so it falls back to the
	// opaque-name path rather than resolving the wrapped type.
	got, err := cxtype.ToCanonical(engine.ClickHouse, "Nullable(Decimal(18,2))", cxtype.Options{})
	require.NoError(t, err)
	require.Equal(t, cxtype.Unknown, got.Kind)
}

func TestMapType(t *testing.T) {
	tests := []struct {
		name     string
		from     engine.Tag
		native   string
		to       engine.Tag
		expected string
	}{
		{"postgres varchar to mysql", engine.Postgres, "character varying(100)", engine.MySQL, "varchar(100)"},
		{"mysql tinyint(1) to postgres boolean", engine.MySQL, "tinyint(1)", engine.Postgres, "boolean"},
		{"oracle number(1) to mssql bit", engine.Oracle, "NUMBER(1)", engine.SQLServer, "bit"},
		{"sqlite integer to postgres bigint", engine.SQLite, "INTEGER", engine.Postgres, "bigint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cxtype.MapType(tt.from, tt.native, tt.to, cxtype.Options{})
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestMapTypeWithWarnings_DecimalNarrowing(t *testing.T) {
	// SQLite's NUMERIC affinity carries no precision or scale at all,
	// so a bounded decimal loses its bounds going through it.
	_, warnings, err := cxtype.MapTypeWithWarnings(engine.Postgres, "numeric(10,2)", engine.SQLite, cxtype.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	require.Equal(t, "precision-narrowed", warnings[0].Kind)
	require.True(t, warnings[0].IsLossy)
}

func TestMapTypeWithWarnings_UnicodeDowngrade(t *testing.T) {
	_, warnings, err := cxtype.MapTypeWithWarnings(engine.SQLServer, "nvarchar(50)", engine.Postgres, cxtype.Options{})
	require.NoError(t, err)
	// postgres has no unicode/non-unicode distinction so NVarchar ->
	// "character varying" -> re-parsed as Varchar: a lossy downgrade.
	require.NotEmpty(t, warnings)
	require.Equal(t, "unicode-downgraded", warnings[0].Kind)
	require.True(t, warnings[0].IsLossy)
}

// BigInt -> Int narrowing is covered directly against compareLossiness
// in TestCompareLossiness_CaseTable: every engine registered here keeps
// a native 64-bit integer type, so no real engine pair narrows it
// through a round trip today.

func TestMapTypeWithWarnings_UuidRenderedAsTextIsNonLossyAdvisory(t *testing.T) {
	_, warnings, err := cxtype.MapTypeWithWarnings(engine.Postgres, "uuid", engine.MySQL, cxtype.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	require.Equal(t, "rendered-as-text", warnings[0].Kind)
	require.False(t, warnings[0].IsLossy)
}

func TestMapTypeWithWarnings_Lossless(t *testing.T) {
	_, warnings, err := cxtype.MapTypeWithWarnings(engine.Postgres, "bigint", engine.MySQL, cxtype.Options{})
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestOptions_DecimalDefaultOverride(t *testing.T) {
	opts := cxtype.Options{
		DefaultDecimalPrecisionScale: map[engine.Tag][2]uint8{
			engine.Postgres: {25, 5},
		},
	}
	got, err := cxtype.ToCanonical(engine.Postgres, "numeric", opts)
	require.NoError(t, err)
	require.True(t, cxtype.NewDecimal(25, 5).Equal(got))
}
