package planner

import "github.com/pseudomuto/dbmig/pkg/datadiff"

// Plan turns a datadiff.Result into a MigrationPlan according to cfg's
// Mode and, for updated rows, ConflictResolution. Plan is total: every
// mode and conflict strategy combination produces a result, never an
// error.
func Plan(diff *datadiff.Result, cfg Config) *MigrationPlan {
	plan := &MigrationPlan{
		Mode:        cfg.Mode,
		DryRun:      cfg.DryRun,
		SourceCount: diff.MatchedRows + len(diff.UpdatedRows) + len(diff.InsertedRows),
		TargetCount: diff.MatchedRows + len(diff.UpdatedRows) + len(diff.DeletedRows),
	}

	switch cfg.Mode {
	case SchemaOnly:
		// no row lists populated
	case AppendOnly:
		plan.ToInsert = diff.InsertedRows
	case Upsert, Merge:
		plan.ToInsert = diff.InsertedRows
		applyConflictResolution(plan, diff, cfg.Conflict)
	case Mirror:
		plan.ToInsert = diff.InsertedRows
		applyConflictResolution(plan, diff, cfg.Conflict)
		plan.ToDelete = diff.DeletedRows
	}

	batchSize := cfg.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}
	total := len(plan.ToInsert) + len(plan.ToUpdate) + len(plan.ToDelete)
	plan.BatchCount = (total + batchSize - 1) / batchSize
	if total == 0 {
		plan.BatchCount = 0
	}

	return plan
}

func applyConflictResolution(plan *MigrationPlan, diff *datadiff.Result, conflict ConflictResolution) {
	for _, u := range diff.UpdatedRows {
		result, review, ok := resolve(u, conflict)
		if !ok {
			continue
		}
		entry := PlannedUpdate{Row: result, ChangedColumns: u.ChangedColumns}
		if review {
			plan.ToReview = append(plan.ToReview, entry)
		} else {
			plan.ToUpdate = append(plan.ToUpdate, entry)
		}
	}
}
