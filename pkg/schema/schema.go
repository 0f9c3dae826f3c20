package schema

import "github.com/pseudomuto/dbmig/pkg/compare"

type (
	// SchemaInfo is a normalized description of a database: a name and
	// the tables within it.
	SchemaInfo struct {
		DatabaseName string
		Tables       []TableInfo
	}

	// TableInfo describes a single table: its columns, indexes,
	// constraints, and an optional cached row count.
	TableInfo struct {
		SchemaName  string
		TableName   string
		Columns     []ColumnInfo
		Indexes     []IndexInfo
		Constraints []ConstraintInfo
		RowCount    *int64
	}

	// ColumnInfo describes a single column.
	ColumnInfo struct {
		Name           string
		DataType       string // native type string, as reported by the driver
		IsNullable     bool
		IsPrimaryKey   bool
		MaxLength      *int
		Precision      *int
		Scale          *int
		DefaultValue   *string
		OrdinalPosition int
	}

	// IndexInfo describes a single index.
	IndexInfo struct {
		Name        string
		Columns     []string
		IsUnique    bool
		IsClustered bool
		IndexType   string
	}

	// ConstraintType enumerates the kinds of constraint a table can
	// carry.
	ConstraintType string

	// ConstraintInfo describes a single constraint.
	ConstraintInfo struct {
		Name                string
		ConstraintType      ConstraintType
		Columns             []string
		ReferencedTable     *string
		ReferencedColumns   []string
	}
)

const (
	ConstraintPrimaryKey ConstraintType = "PrimaryKey"
	ConstraintForeignKey ConstraintType = "ForeignKey"
	ConstraintUnique     ConstraintType = "Unique"
	ConstraintCheck      ConstraintType = "Check"
	ConstraintDefault    ConstraintType = "Default"
)

// QualifiedName returns "schema.table", or just "table" when SchemaName
// is empty.
func (t TableInfo) QualifiedName() string {
	if t.SchemaName == "" {
		return t.TableName
	}
	return t.SchemaName + "." + t.TableName
}

// PrimaryKeyColumns returns the table's primary-key column set: the
// union of columns named by PrimaryKey constraints and columns with
// IsPrimaryKey set, per the invariant in the data model.
func (t TableInfo) PrimaryKeyColumns() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			add(c.Name)
		}
	}
	for _, c := range t.Constraints {
		if c.ConstraintType == ConstraintPrimaryKey {
			for _, col := range c.Columns {
				add(col)
			}
		}
	}
	return out
}

// Column returns the column with the given name, if present.
func (t TableInfo) Column(name string) (ColumnInfo, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// Equal compares two columns field by field.
func (c ColumnInfo) Equal(other ColumnInfo) bool {
	return c.Name == other.Name &&
		c.DataType == other.DataType &&
		c.IsNullable == other.IsNullable &&
		c.IsPrimaryKey == other.IsPrimaryKey &&
		compare.Pointers(c.MaxLength, other.MaxLength) &&
		compare.Pointers(c.Precision, other.Precision) &&
		compare.Pointers(c.Scale, other.Scale) &&
		compare.Pointers(c.DefaultValue, other.DefaultValue)
}

// Equal compares two indexes, treating Columns as ordered (index column
// order is semantically significant).
func (i IndexInfo) Equal(other IndexInfo) bool {
	return i.Name == other.Name &&
		i.IsUnique == other.IsUnique &&
		i.IsClustered == other.IsClustered &&
		compare.Slices(i.Columns, other.Columns, func(a, b string) bool { return a == b })
}

// Equal compares two constraints.
func (c ConstraintInfo) Equal(other ConstraintInfo) bool {
	return c.Name == other.Name &&
		c.ConstraintType == other.ConstraintType &&
		compare.Slices(c.Columns, other.Columns, func(a, b string) bool { return a == b }) &&
		compare.PointersWithEqual(c.ReferencedTable, other.ReferencedTable, func(a, b *string) bool { return *a == *b }) &&
		compare.Slices(c.ReferencedColumns, other.ReferencedColumns, func(a, b string) bool { return a == b })
}
