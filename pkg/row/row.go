package row

import "github.com/pkg/errors"

// ErrDuplicateField is returned by Row.Set when a field name is already
// present, enforcing the row-model invariant that field names are
// unique within a row.
var ErrDuplicateField = errors.New("duplicate field name in row")

// Field is a single name/value pair within a Row.
type Field struct {
	Name  string
	Value Value
}

// Row is an ordered mapping from field name to Value. Order is
// insertion order, which is also source/target iteration order for
// determinism purposes elsewhere in the system.
type Row struct {
	fields []Field
	index  map[string]int
}

// NewRow builds a Row from an ordered field list. It panics if two
// fields share a name, since a caller constructing a Row directly from a
// literal is a programmer error, not a runtime condition.
func NewRow(fields ...Field) Row {
	r := Row{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if err := r.Set(f.Name, f.Value); err != nil {
			panic(err)
		}
	}
	return r
}

// Set appends a field, or returns ErrDuplicateField if the name is
// already present.
func (r *Row) Set(name string, v Value) error {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if _, exists := r.index[name]; exists {
		return errors.Wrapf(ErrDuplicateField, "field %q", name)
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: v})
	return nil
}

// Get returns the value for name and whether it was present.
func (r Row) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.fields[i].Value, true
}

// Has reports whether name is present in the row.
func (r Row) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Fields returns the row's fields in order. The returned slice is a
// copy; mutating it does not affect the row.
func (r Row) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Names returns the row's field names in order.
func (r Row) Names() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Len returns the number of fields in the row.
func (r Row) Len() int { return len(r.fields) }

// Filter returns a new Row containing only the named fields, preserving
// the row's field order. Names absent from the row are silently
// dropped, matching the orchestrator's "drop fields absent in target"
// column-filtering rule.
func (r Row) Filter(keep map[string]bool) Row {
	out := Row{index: make(map[string]int)}
	for _, f := range r.fields {
		if keep[f.Name] {
			_ = out.Set(f.Name, f.Value)
		}
	}
	return out
}

// With returns a copy of r with name set to v, overwriting any existing
// value for that name and preserving its original position, or
// appending if name is new.
func (r Row) With(name string, v Value) Row {
	out := Row{index: make(map[string]int, len(r.fields)+1)}
	replaced := false
	for _, f := range r.fields {
		if f.Name == name {
			f.Value = v
			replaced = true
		}
		_ = out.Set(f.Name, f.Value)
	}
	if !replaced {
		_ = out.Set(name, v)
	}
	return out
}

// RowSet is an ordered sequence of rows observed from one source at one
// point in time.
type RowSet []Row
