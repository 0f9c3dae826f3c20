package datadiff

import "github.com/pseudomuto/dbmig/pkg/row"

// StrategyKind discriminates the variant carried by a MatchStrategy.
type StrategyKind string

const (
	// PrimaryKey resolves the key automatically: the "id" field if
	// present, otherwise every field (a degraded composite fallback).
	PrimaryKey StrategyKind = "PrimaryKey"
	// CompositeKey uses an explicit, caller-supplied column list as the key.
	CompositeKey StrategyKind = "CompositeKey"
	// CustomExpression is a placeholder strategy: not implemented, see Compare.
	CustomExpression StrategyKind = "CustomExpression"
	// Fuzzy pairs rows by maximizing the fraction of equal columns,
	// rather than by an exact key.
	Fuzzy StrategyKind = "Fuzzy"
)

// MatchStrategy selects how Compare pairs source and target rows.
// Only the fields relevant to Kind are meaningful: Columns for
// CompositeKey, Expression for CustomExpression, Threshold for Fuzzy.
type MatchStrategy struct {
	Kind       StrategyKind
	Columns    []string
	Expression string
	Threshold  float64
}

// ByPrimaryKey builds the PrimaryKey strategy.
func ByPrimaryKey() MatchStrategy { return MatchStrategy{Kind: PrimaryKey} }

// ByCompositeKey builds a CompositeKey strategy over the given columns.
func ByCompositeKey(columns ...string) MatchStrategy {
	return MatchStrategy{Kind: CompositeKey, Columns: columns}
}

// ByCustomExpression builds the (unimplemented) CustomExpression strategy.
func ByCustomExpression(expr string) MatchStrategy {
	return MatchStrategy{Kind: CustomExpression, Expression: expr}
}

// ByFuzzy builds a Fuzzy strategy with the given match threshold in [0,1].
func ByFuzzy(threshold float64) MatchStrategy {
	return MatchStrategy{Kind: Fuzzy, Threshold: threshold}
}

// Config controls how Compare matches and equates rows.
type Config struct {
	Strategy MatchStrategy

	// IgnoreColumns is excluded from equality comparison and from the
	// hash domain.
	IgnoreColumns []string

	NormalizeWhitespace bool
	CaseInsensitive     bool
	NumericTolerance    *float64
	NullEqualsEmpty     bool

	// UseHashMode enables the SHA-256 fast path for key-based matching.
	UseHashMode bool

	// BatchSize is advisory for pipeline integration; Compare itself
	// operates entirely in memory.
	BatchSize int
}

func (c Config) normalizeOptions() row.NormalizeOptions {
	return row.NormalizeOptions{
		NormalizeWhitespace: c.NormalizeWhitespace,
		CaseInsensitive:     c.CaseInsensitive,
		NumericTolerance:    c.NumericTolerance,
		NullEqualsEmpty:     c.NullEqualsEmpty,
	}
}

func (c Config) ignoreSet() map[string]bool {
	m := make(map[string]bool, len(c.IgnoreColumns))
	for _, col := range c.IgnoreColumns {
		m[col] = true
	}
	return m
}
