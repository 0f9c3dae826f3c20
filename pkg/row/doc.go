// Package row models a single observed database row as an ordered
// field-to-value mapping, where each value is drawn from a closed sum
// type rather than a language-native dynamic map.
//
// Representing values as a tagged Kind plus payload fields (mirroring
// the way the teacher's parser package represents DataType as one
// struct with several optional fields and a discriminant) keeps
// equality, normalization, and stringification total functions that
// never need a type switch on `any`.
package row
