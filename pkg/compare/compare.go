package compare

// Pointers compares two pointer values for equality.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	func (t *TypeParameter) Equal(other *TypeParameter) bool {
//	    return compare.Pointers(t.Number, other.Number) &&
//	           compare.Pointers(t.String, other.String)
//	}
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// PointersWithEqual compares two pointers using a custom equality function.
// Returns true if both are nil, or both are non-nil and the equality function returns true.
//
// Example:
//
//	func (t *TableEngine) Equal(other *TableEngine) bool {
//	    return compare.PointersWithEqual(t.Engine, other.Engine,
//	        func(a, b *EngineSpec) bool { return a.Equal(b) })
//	}
func PointersWithEqual[T any](a, b *T, equalFunc func(*T, *T) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return equalFunc(a, b)
}

// Slices compares two slices for equality using an equality function for elements.
// Returns true if both slices have the same length and all corresponding elements are equal.
//
// Example:
//
//	func (t *Tuple) Equal(other *Tuple) bool {
//	    return compare.Slices(t.Elements, other.Elements,
//	        func(a, b TupleElement) bool { return a.Equal(&b) })
//	}
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}
