package row_test

import (
	"testing"

	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/stretchr/testify/require"
)

func TestStringify(t *testing.T) {
	cases := []struct {
		name string
		v    row.Value
		opts row.NormalizeOptions
		want string
	}{
		{"null", row.Null(), row.NormalizeOptions{}, "NULL"},
		{"null equals empty", row.Null(), row.NormalizeOptions{NullEqualsEmpty: true}, ""},
		{"bool true", row.Bool(true), row.NormalizeOptions{}, "true"},
		{"bool false", row.Bool(false), row.NormalizeOptions{}, "false"},
		{"number", row.Number(42), row.NormalizeOptions{}, "42"},
		{"number fractional", row.Number(3.5), row.NormalizeOptions{}, "3.5"},
		{"string", row.String("Hello  World"), row.NormalizeOptions{}, "Hello  World"},
		{"string normalized whitespace", row.String("Hello  World"), row.NormalizeOptions{NormalizeWhitespace: true}, "Hello World"},
		{"string case insensitive", row.String("Hello"), row.NormalizeOptions{CaseInsensitive: true}, "hello"},
		{
			"array",
			row.Array(row.Number(1), row.String("a")),
			row.NormalizeOptions{},
			"[1,a]",
		},
		{
			"object sorts fields by name",
			row.Object(row.Field{Name: "b", Value: row.Number(2)}, row.Field{Name: "a", Value: row.Number(1)}),
			row.NormalizeOptions{},
			"{a:1,b:2}",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, row.Stringify(c.v, c.opts))
		})
	}
}

func TestEqual_NullEqualsEmpty(t *testing.T) {
	opts := row.NormalizeOptions{NullEqualsEmpty: true}
	require.True(t, row.Equal(row.Null(), row.String(""), opts))
	require.True(t, row.Equal(row.String(""), row.Null(), opts))
	require.False(t, row.Equal(row.Null(), row.String("x"), opts))
}

func TestEqual_NullMismatchWithoutNullEqualsEmpty(t *testing.T) {
	require.False(t, row.Equal(row.Null(), row.String(""), row.NormalizeOptions{}))
	require.True(t, row.Equal(row.Null(), row.Null(), row.NormalizeOptions{}))
}

func TestEqual_NumericTolerance(t *testing.T) {
	tol := 0.01
	opts := row.NormalizeOptions{NumericTolerance: &tol}
	require.True(t, row.Equal(row.Number(1.001), row.Number(1.002), opts))
	require.False(t, row.Equal(row.Number(1.0), row.Number(1.5), opts))

	// numeric tolerance also applies to numeric strings
	require.True(t, row.Equal(row.String("1.001"), row.Number(1.002), opts))
}

func TestEqual_FallsBackToStringifiedComparison(t *testing.T) {
	require.True(t, row.Equal(row.String("abc"), row.String("abc"), row.NormalizeOptions{}))
	require.False(t, row.Equal(row.String("abc"), row.String("ABC"), row.NormalizeOptions{}))
	require.True(t, row.Equal(row.String("abc"), row.String("ABC"), row.NormalizeOptions{CaseInsensitive: true}))
}

func TestIsNull(t *testing.T) {
	require.True(t, row.Null().IsNull())
	require.False(t, row.String("").IsNull())
}
