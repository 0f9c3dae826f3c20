// Package compare provides generic comparison utilities for structural equality testing.
//
// This package offers a set of helper functions that eliminate boilerplate code when
// implementing Equal() methods on structs. It handles common patterns like pointer and
// slice comparisons, used by pkg/schema's ColumnInfo/IndexInfo/ConstraintInfo.
//
// # Usage Examples
//
// Compare pointer fields:
//
//	// Before (12 lines for 2 fields):
//	if (t.Field1 != nil) != (other.Field1 != nil) {
//	    return false
//	}
//	if t.Field1 != nil && *t.Field1 != *other.Field1 {
//	    return false
//	}
//	// ... repeat for Field2
//
//	// After (2 lines):
//	return compare.Pointers(t.Field1, other.Field1) &&
//	       compare.Pointers(t.Field2, other.Field2)
//
// Compare slices with element equality:
//
//	// Before (8 lines):
//	if len(a.Items) != len(other.Items) {
//	    return false
//	}
//	for i := range a.Items {
//	    if !a.Items[i].Equal(&other.Items[i]) {
//	        return false
//	    }
//	}
//	return true
//
//	// After (3 lines):
//	return compare.Slices(a.Items, other.Items, func(x, y Item) bool {
//	    return x.Equal(&y)
//	})
package compare
