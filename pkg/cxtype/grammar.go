package cxtype

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type (
	// nativeType is the participle grammar for a single engine-native
	// type string: a (possibly multi-word) name, an optional
	// parenthesised parameter list, an optional array suffix, and any
	// trailing modifier words (e.g. MySQL's "unsigned", "zerofill").
	nativeType struct {
		Name    string      `parser:"@Ident"`
		Params  *paramList  `parser:"('(' @@ ')')?"`
		IsArray bool        `parser:"( @('[' ']') )?"`
		Suffix  []string    `parser:"@Ident*"`
	}

	paramList struct {
		Values []string `parser:"@(Number|Ident) (',' @(Number|Ident))*"`
	}
)

var nativeTypeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*(?:[ \t]+[A-Za-z_][A-Za-z0-9_]*)*`},
	{Name: "Punct", Pattern: `[(),\[\]]`},
})

var nativeTypeParser = participle.MustBuild[nativeType](
	participle.Lexer(nativeTypeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// parsedNative is the normalized result of parsing a native type
// string: an upper-cased name, zero or more parameters (numbers or the
// MAX sentinel), whether a trailing `[]` was present, and any trailing
// modifier words (lower-cased).
type parsedNative struct {
	Name      string
	Params    []string // raw, as written ("10", "2", "MAX")
	IsArray   bool
	Modifiers []string
}

// IntParam returns Params[i] as an int, or ok=false if absent/unparsable.
func (p parsedNative) IntParam(i int) (int, bool) {
	if i >= len(p.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(p.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsMax reports whether the sole parameter is the MAX sentinel.
func (p parsedNative) IsMax() bool {
	return len(p.Params) == 1 && strings.EqualFold(p.Params[0], "MAX")
}

// HasModifier reports whether the given lower-case modifier word was
// present after the parameter list (e.g. "unsigned").
func (p parsedNative) HasModifier(word string) bool {
	for _, m := range p.Modifiers {
		if m == word {
			return true
		}
	}
	return false
}

// parseNative parses an engine-native type string per the grammar rule
// in the design: case-insensitive, trimmed, with a trailing
// parenthesised list yielding up to two integer parameters or the MAX
// sentinel, and an optional `[]` array suffix.
func parseNative(native string) parsedNative {
	trimmed := strings.TrimSpace(native)
	if trimmed == "" {
		return parsedNative{}
	}

	ast, err := nativeTypeParser.ParseString("", trimmed)
	if err != nil {
		// Not every native string fits the grammar (e.g. stray
		// punctuation); fall back to treating the whole trimmed
		// string as an opaque name.
		return parsedNative{Name: strings.ToUpper(trimmed)}
	}

	result := parsedNative{
		Name:    strings.ToUpper(strings.Join(strings.Fields(ast.Name), " ")),
		IsArray: ast.IsArray,
	}
	if ast.Params != nil {
		result.Params = ast.Params.Values
	}
	for _, s := range ast.Suffix {
		for _, w := range strings.Fields(s) {
			result.Modifiers = append(result.Modifiers, strings.ToLower(w))
		}
	}
	return result
}
