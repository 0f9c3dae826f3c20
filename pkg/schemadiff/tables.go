package schemadiff

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pseudomuto/dbmig/pkg/cxtype"
	"github.com/pseudomuto/dbmig/pkg/schema"
)

func compareTables(source, target map[string]schema.TableInfo, cfg Config) []SchemaChange {
	var changes []SchemaChange

	for _, name := range sortedUnion(source, target) {
		sourceTable, inSource := source[name]
		targetTable, inTarget := target[name]

		switch {
		case inSource && !inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectTable, ObjectName: name, ChangeType: Removed})
		case !inSource && inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectTable, ObjectName: name, ChangeType: Added})
		default:
			sub := compareColumns(name, sourceTable.Columns, targetTable.Columns, cfg)
			sub = append(sub, compareIndexes(name, sourceTable.Indexes, targetTable.Indexes)...)
			sub = append(sub, compareConstraints(name, sourceTable.Constraints, targetTable.Constraints)...)

			if allUnchanged(sub) {
				changes = append(changes, SchemaChange{ObjectType: ObjectTable, ObjectName: name, ChangeType: Unchanged})
			} else {
				changes = append(changes, sub...)
			}
		}
	}

	return changes
}

func allUnchanged(changes []SchemaChange) bool {
	for _, c := range changes {
		if c.ChangeType != Unchanged {
			return false
		}
	}
	return true
}

func compareColumns(table string, source, target []schema.ColumnInfo, cfg Config) []SchemaChange {
	sourceByName := indexColumns(source)
	targetByName := indexColumns(target)

	var changes []SchemaChange
	for _, name := range sortedUnionStrKeys(sourceByName, targetByName) {
		objectName := table + "." + name
		s, inSource := sourceByName[name]
		t, inTarget := targetByName[name]

		switch {
		case inSource && !inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectColumn, ObjectName: objectName, ChangeType: Removed})
		case !inSource && inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectColumn, ObjectName: objectName, ChangeType: Added})
		default:
			details := columnDetails(s, t, cfg)
			if len(details) == 0 {
				changes = append(changes, SchemaChange{ObjectType: ObjectColumn, ObjectName: objectName, ChangeType: Unchanged})
			} else {
				changes = append(changes, SchemaChange{ObjectType: ObjectColumn, ObjectName: objectName, ChangeType: Modified, Details: details})
			}
		}
	}
	return changes
}

func columnDetails(s, t schema.ColumnInfo, cfg Config) []ChangeDetail {
	var details []ChangeDetail

	if !sameDataType(s.DataType, t.DataType, cfg) {
		details = append(details, ChangeDetail{Property: "data_type", SourceValue: strPtr(s.DataType), TargetValue: strPtr(t.DataType)})
	}
	if s.IsNullable != t.IsNullable {
		details = append(details, ChangeDetail{Property: "is_nullable", SourceValue: strPtr(boolStr(s.IsNullable)), TargetValue: strPtr(boolStr(t.IsNullable))})
	}
	if !intPtrEqual(s.MaxLength, t.MaxLength) {
		details = append(details, ChangeDetail{Property: "max_length", SourceValue: intPtrStr(s.MaxLength), TargetValue: intPtrStr(t.MaxLength)})
	}
	if !intPtrEqual(s.Precision, t.Precision) {
		details = append(details, ChangeDetail{Property: "precision", SourceValue: intPtrStr(s.Precision), TargetValue: intPtrStr(t.Precision)})
	}
	if !intPtrEqual(s.Scale, t.Scale) {
		details = append(details, ChangeDetail{Property: "scale", SourceValue: intPtrStr(s.Scale), TargetValue: intPtrStr(t.Scale)})
	}
	if !strPtrEqual(s.DefaultValue, t.DefaultValue) {
		details = append(details, ChangeDetail{Property: "default_value", SourceValue: s.DefaultValue, TargetValue: t.DefaultValue})
	}

	return details
}

// sameDataType compares two native type strings as the spec requires:
// canonicalised when both engines are known to cxtype, case-insensitive
// raw comparison otherwise. Either path is total - an unrecognized
// native string never fails the comparison, it just falls through to
// Unknown(original) equality.
func sameDataType(source, target string, cfg Config) bool {
	if cfg.SourceEngine == "" || cfg.TargetEngine == "" {
		return strings.EqualFold(source, target)
	}

	sourceCanon, err := cxtype.ToCanonical(cfg.SourceEngine, source, cfg.TypeOptions)
	if err != nil {
		return strings.EqualFold(source, target)
	}
	targetCanon, err := cxtype.ToCanonical(cfg.TargetEngine, target, cfg.TypeOptions)
	if err != nil {
		return strings.EqualFold(source, target)
	}
	return sourceCanon.Equal(targetCanon)
}

func compareIndexes(table string, source, target []schema.IndexInfo) []SchemaChange {
	sourceByName := indexIndexes(source)
	targetByName := indexIndexes(target)

	var changes []SchemaChange
	for _, name := range sortedUnionStrKeys(sourceByName, targetByName) {
		objectName := table + "." + name
		s, inSource := sourceByName[name]
		t, inTarget := targetByName[name]

		switch {
		case inSource && !inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectIndex, ObjectName: objectName, ChangeType: Removed})
		case !inSource && inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectIndex, ObjectName: objectName, ChangeType: Added})
		default:
			var details []ChangeDetail
			if !stringSliceEqual(s.Columns, t.Columns) {
				details = append(details, ChangeDetail{Property: "columns", SourceValue: strPtr(strings.Join(s.Columns, ",")), TargetValue: strPtr(strings.Join(t.Columns, ","))})
			}
			if s.IsUnique != t.IsUnique {
				details = append(details, ChangeDetail{Property: "is_unique", SourceValue: strPtr(boolStr(s.IsUnique)), TargetValue: strPtr(boolStr(t.IsUnique))})
			}
			if s.IsClustered != t.IsClustered {
				details = append(details, ChangeDetail{Property: "is_clustered", SourceValue: strPtr(boolStr(s.IsClustered)), TargetValue: strPtr(boolStr(t.IsClustered))})
			}
			if len(details) == 0 {
				changes = append(changes, SchemaChange{ObjectType: ObjectIndex, ObjectName: objectName, ChangeType: Unchanged})
			} else {
				changes = append(changes, SchemaChange{ObjectType: ObjectIndex, ObjectName: objectName, ChangeType: Modified, Details: details})
			}
		}
	}
	return changes
}

func compareConstraints(table string, source, target []schema.ConstraintInfo) []SchemaChange {
	sourceByName := indexConstraints(source)
	targetByName := indexConstraints(target)

	var changes []SchemaChange
	for _, name := range sortedUnionStrKeys(sourceByName, targetByName) {
		objectName := table + "." + name
		s, inSource := sourceByName[name]
		t, inTarget := targetByName[name]

		switch {
		case inSource && !inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectConstraint, ObjectName: objectName, ChangeType: Removed})
		case !inSource && inTarget:
			changes = append(changes, SchemaChange{ObjectType: ObjectConstraint, ObjectName: objectName, ChangeType: Added})
		default:
			var details []ChangeDetail
			if s.ConstraintType != t.ConstraintType {
				details = append(details, ChangeDetail{Property: "constraint_type", SourceValue: strPtr(string(s.ConstraintType)), TargetValue: strPtr(string(t.ConstraintType))})
			}
			if !stringSliceEqual(s.Columns, t.Columns) {
				details = append(details, ChangeDetail{Property: "columns", SourceValue: strPtr(strings.Join(s.Columns, ",")), TargetValue: strPtr(strings.Join(t.Columns, ","))})
			}
			if !strPtrEqual(s.ReferencedTable, t.ReferencedTable) {
				details = append(details, ChangeDetail{Property: "referenced_table", SourceValue: s.ReferencedTable, TargetValue: t.ReferencedTable})
			}
			if !stringSliceEqual(s.ReferencedColumns, t.ReferencedColumns) {
				details = append(details, ChangeDetail{Property: "referenced_columns", SourceValue: strPtr(strings.Join(s.ReferencedColumns, ",")), TargetValue: strPtr(strings.Join(t.ReferencedColumns, ","))})
			}
			if len(details) == 0 {
				changes = append(changes, SchemaChange{ObjectType: ObjectConstraint, ObjectName: objectName, ChangeType: Unchanged})
			} else {
				changes = append(changes, SchemaChange{ObjectType: ObjectConstraint, ObjectName: objectName, ChangeType: Modified, Details: details})
			}
		}
	}
	return changes
}

func indexColumns(cols []schema.ColumnInfo) map[string]schema.ColumnInfo {
	m := make(map[string]schema.ColumnInfo, len(cols))
	for _, c := range cols {
		m[c.Name] = c
	}
	return m
}

func indexIndexes(idxs []schema.IndexInfo) map[string]schema.IndexInfo {
	m := make(map[string]schema.IndexInfo, len(idxs))
	for _, i := range idxs {
		m[i.Name] = i
	}
	return m
}

func indexConstraints(cs []schema.ConstraintInfo) map[string]schema.ConstraintInfo {
	m := make(map[string]schema.ConstraintInfo, len(cs))
	for _, c := range cs {
		m[c.Name] = c
	}
	return m
}

func sortedUnion(a, b map[string]schema.TableInfo) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for k := range a {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for k := range b {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func sortedUnionStrKeys[T any](a, b map[string]T) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for k := range a {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for k := range b {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtr(s string) *string { return &s }

func intPtrStr(i *int) *string {
	if i == nil {
		return nil
	}
	s := strconv.Itoa(*i)
	return &s
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
