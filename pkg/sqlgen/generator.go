package sqlgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pseudomuto/dbmig/pkg/row"
)

// Generator renders SQL statements for a single Dialect.
type Generator struct {
	Dialect Dialect
}

// NewGenerator builds a Generator for the given dialect.
func NewGenerator(d Dialect) Generator { return Generator{Dialect: d} }

func isKeyColumn(name string, keyCols []string) bool {
	for _, k := range keyCols {
		if k == name {
			return true
		}
	}
	return false
}

// GenerateInsert renders "INSERT INTO <table> (<sorted cols>) VALUES
// (<literals>);" over every field in r.
func (g Generator) GenerateInsert(table string, r row.Row) string {
	names := append([]string(nil), r.Names()...)
	sort.Strings(names)

	cols := make([]string, len(names))
	vals := make([]string, len(names))
	for i, name := range names {
		v, _ := r.Get(name)
		cols[i] = g.Dialect.QuoteIdent(name)
		vals[i] = g.Dialect.QuoteLiteral(v)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		g.Dialect.QuoteIdent(table), strings.Join(cols, ", "), strings.Join(vals, ", "))
}

// GenerateUpdate renders an UPDATE that SETs every column of r not in
// keyCols and WHEREs on keyCols.
func (g Generator) GenerateUpdate(table string, r row.Row, keyCols []string) string {
	return g.GeneratePartialUpdate(table, r, r.Names(), keyCols)
}

// GeneratePartialUpdate renders an UPDATE restricted to the subset of
// updateCols that are not key columns and exist in r. If the resulting
// SET list is empty it returns "" - the caller treats that as a skip.
func (g Generator) GeneratePartialUpdate(table string, r row.Row, updateCols, keyCols []string) string {
	var setNames []string
	seen := make(map[string]bool)
	for _, name := range updateCols {
		if isKeyColumn(name, keyCols) || seen[name] || !r.Has(name) {
			continue
		}
		seen[name] = true
		setNames = append(setNames, name)
	}
	if len(setNames) == 0 {
		return ""
	}
	sort.Strings(setNames)

	sets := make([]string, len(setNames))
	for i, name := range setNames {
		v, _ := r.Get(name)
		sets[i] = fmt.Sprintf("%s = %s", g.Dialect.QuoteIdent(name), g.Dialect.QuoteLiteral(v))
	}

	where := g.whereClause(r, keyCols)
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s;", g.Dialect.QuoteIdent(table), strings.Join(sets, ", "), where)
}

// GenerateDelete renders a DELETE WHEREing on keyCols.
func (g Generator) GenerateDelete(table string, r row.Row, keyCols []string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s;", g.Dialect.QuoteIdent(table), g.whereClause(r, keyCols))
}

func (g Generator) whereClause(r row.Row, keyCols []string) string {
	sortedKeys := append([]string(nil), keyCols...)
	sort.Strings(sortedKeys)

	conditions := make([]string, len(sortedKeys))
	for i, name := range sortedKeys {
		v, ok := r.Get(name)
		if !ok {
			v = row.Null()
		}
		conditions[i] = fmt.Sprintf("%s = %s", g.Dialect.QuoteIdent(name), g.Dialect.QuoteLiteral(v))
	}
	return strings.Join(conditions, " AND ")
}
