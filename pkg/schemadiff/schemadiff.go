package schemadiff

import (
	"github.com/pseudomuto/dbmig/pkg/cxtype"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/schema"
)

const (
	// ObjectTable identifies a SchemaChange about a whole table.
	ObjectTable ObjectType = "Table"
	// ObjectColumn identifies a SchemaChange about a single column.
	ObjectColumn ObjectType = "Column"
	// ObjectIndex identifies a SchemaChange about a single index.
	ObjectIndex ObjectType = "Index"
	// ObjectConstraint identifies a SchemaChange about a single constraint.
	ObjectConstraint ObjectType = "Constraint"
	// ObjectView categorises a view without introspecting its body.
	ObjectView ObjectType = "View"
	// ObjectProcedure categorises a stored procedure without introspecting its body.
	ObjectProcedure ObjectType = "Procedure"
	// ObjectTrigger categorises a trigger without introspecting its body.
	ObjectTrigger ObjectType = "Trigger"
)

const (
	// Added marks an object present only on the target side.
	Added ChangeType = "Added"
	// Removed marks an object present only on the source side.
	Removed ChangeType = "Removed"
	// Modified marks an object present on both sides with differing properties.
	Modified ChangeType = "Modified"
	// Unchanged marks a table whose every sub-object matched exactly, or
	// a matching sub-object of a table that otherwise differs.
	Unchanged ChangeType = "Unchanged"
)

type (
	// ObjectType discriminates the kind of schema object a SchemaChange describes.
	ObjectType string

	// ChangeType discriminates what happened to an object between the
	// source and target snapshots.
	ChangeType string

	// ChangeDetail names a single differing property between the source
	// and target versions of a Modified object. SourceValue/TargetValue
	// are nil when the property is absent on that side (e.g. a
	// constraint with no referenced table).
	ChangeDetail struct {
		Property    string
		SourceValue *string
		TargetValue *string
	}

	// SchemaChange is one record in a SchemaDiffResult: an object,
	// identified by its qualified name, and what happened to it.
	// Details is empty for Added, Removed, and Unchanged changes.
	SchemaChange struct {
		ObjectType ObjectType
		ObjectName string
		ChangeType ChangeType
		Details    []ChangeDetail
	}

	// SchemaDiffResult aggregates every SchemaChange found between two
	// table snapshots, plus a count of each ChangeType.
	SchemaDiffResult struct {
		SourceDB string
		TargetDB string
		Changes  []SchemaChange
		Summary  map[ChangeType]int
	}

	// Config selects the engines the two snapshots were captured from,
	// used to canonicalise data_type comparisons via cxtype. A zero
	// value for either engine falls back to a case-insensitive raw
	// string comparison of the native type - the diff never errors.
	Config struct {
		SourceEngine engine.Tag
		TargetEngine engine.Tag
		TypeOptions  cxtype.Options
	}
)

// Diff compares two TableInfo snapshots, labeled sourceDB/targetDB, and
// returns every Added, Removed, Modified, and Unchanged record. Diff is
// total: it never returns an error.
func Diff(sourceDB, targetDB string, source, target []schema.TableInfo, cfg Config) *SchemaDiffResult {
	sourceByName := indexTables(source)
	targetByName := indexTables(target)

	result := &SchemaDiffResult{
		SourceDB: sourceDB,
		TargetDB: targetDB,
		Summary:  map[ChangeType]int{},
	}

	for _, change := range compareTables(sourceByName, targetByName, cfg) {
		result.Changes = append(result.Changes, change)
		result.Summary[change.ChangeType]++
	}

	return result
}

func indexTables(tables []schema.TableInfo) map[string]schema.TableInfo {
	m := make(map[string]schema.TableInfo, len(tables))
	for _, t := range tables {
		m[t.QualifiedName()] = t
	}
	return m
}
