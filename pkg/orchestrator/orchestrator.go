package orchestrator

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/datadiff"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/executor"
	"github.com/pseudomuto/dbmig/pkg/planner"
	"github.com/pseudomuto/dbmig/pkg/row"
	"github.com/pseudomuto/dbmig/pkg/schema"
	"github.com/pseudomuto/dbmig/pkg/sqlgen"
)

// Orchestrator drives a multi-table migration between a source and a
// target EngineDriver, reporting progress through sink and honoring a
// shared cancellation token.
type Orchestrator struct {
	Source engine.EngineDriver
	Target engine.EngineDriver
	Sink   engine.ProgressSink
	Cancel *engine.CancelToken
}

// New builds an Orchestrator. A nil sink is replaced with engine.NoopSink.
func New(source, target engine.EngineDriver, sink engine.ProgressSink, cancel *engine.CancelToken) *Orchestrator {
	if sink == nil {
		sink = engine.NoopSink{}
	}
	return &Orchestrator{Source: source, Target: target, Sink: sink, Cancel: cancel}
}

// Run executes the full pipeline over every mapping and aggregates the
// result. An error reading a table's schema or rows is fatal and aborts
// the job; a per-row write failure is counted in the returned Result and
// the run continues to the next batch.
func (o *Orchestrator) Run(ctx context.Context, mappings []TableMapping, cfg Config) (*Result, error) {
	startedAt := time.Now()
	result := &Result{Status: StatusCompleted}

	targetInfos, ordered, ok, err := o.prefetch(ctx, mappings)
	if err != nil {
		return nil, err
	}
	if !ok {
		result.Warnings = append(result.Warnings, "foreign-key dependency cycle detected; affected tables processed in input order")
	}

	for _, m := range ordered {
		if o.Cancel.Cancelled() {
			result.Status = worse(result.Status, StatusCancelled)
			break
		}

		tableResult, err := o.runTable(ctx, m, targetInfos[m.TargetTable], cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "table %q", m.TargetTable)
		}

		result.RowsInserted += tableResult.RowsInserted
		result.RowsUpdated += tableResult.RowsUpdated
		result.RowsDeleted += tableResult.RowsDeleted
		result.RowsSkipped += tableResult.RowsSkipped
		result.ErrorCount += len(tableResult.Errors)
		result.Status = worse(result.Status, mapExecutorStatus(tableResult.Status))
	}

	result.DurationMs = time.Since(startedAt).Milliseconds()
	return result, nil
}

func mapExecutorStatus(s executor.ExecutionStatus) Status {
	switch s {
	case executor.Cancelled:
		return StatusCancelled
	case executor.RolledBack:
		return StatusRolledBack
	case executor.Failed:
		return StatusFailed
	default:
		return StatusCompleted
	}
}

// TablePlan is one table's dry-run MigrationPlan, as produced by Plan.
type TablePlan struct {
	TableMapping TableMapping
	Plan         *planner.MigrationPlan
}

// Plan runs the read/filter/diff/plan stages of the pipeline for every
// mapping, without generating SQL or writing anything, for CLI
// dry-run/preview use. Mapping order follows the same FK-dependency
// topological sort Run uses.
func (o *Orchestrator) Plan(ctx context.Context, mappings []TableMapping, cfg Config) ([]TablePlan, error) {
	targetInfos, ordered, _, err := o.prefetch(ctx, mappings)
	if err != nil {
		return nil, err
	}

	out := make([]TablePlan, 0, len(ordered))
	for _, m := range ordered {
		_, plan, err := o.diffAndPlan(ctx, m, targetInfos[m.TargetTable], cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "table %q", m.TargetTable)
		}
		out = append(out, TablePlan{TableMapping: m, Plan: plan})
	}
	return out, nil
}

func (o *Orchestrator) prefetch(ctx context.Context, mappings []TableMapping) (map[string]*schema.TableInfo, []TableMapping, bool, error) {
	targetInfos := make(map[string]*schema.TableInfo, len(mappings))
	fkDeps := make(map[string][]string)
	for _, m := range mappings {
		info, err := o.Target.GetTableInfo(ctx, m.TargetTable)
		if err != nil {
			return nil, nil, false, errors.Wrapf(err, "prefetch schema for %q", m.TargetTable)
		}
		targetInfos[m.TargetTable] = info

		for _, c := range info.Constraints {
			if c.ConstraintType == schema.ConstraintForeignKey && c.ReferencedTable != nil {
				fkDeps[m.TargetTable] = append(fkDeps[m.TargetTable], *c.ReferencedTable)
			}
		}
	}

	ordered, ok := topoSort(mappings, fkDeps)
	return targetInfos, ordered, ok, nil
}

// diffAndPlan reads, filters, diffs, and plans a single table: the part
// of the pipeline shared by Run (which goes on to generate SQL and
// execute it) and Plan (which stops here).
func (o *Orchestrator) diffAndPlan(ctx context.Context, m TableMapping, targetInfo *schema.TableInfo, cfg Config) (*datadiff.Result, *planner.MigrationPlan, error) {
	sourceRows, err := o.Source.GetRows(ctx, m.SourceTable, nil, nil)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read source table %q", m.SourceTable)
	}
	targetRows, err := o.Target.GetRows(ctx, m.TargetTable, nil, nil)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read target table %q", m.TargetTable)
	}

	targetColumns := columnNames(targetInfo)
	if len(targetColumns) == 0 && len(targetRows) > 0 {
		targetColumns = targetRows[0].Names()
	}
	keep := make(map[string]bool, len(targetColumns))
	for _, c := range targetColumns {
		keep[c] = true
	}

	filtered := make(row.RowSet, len(sourceRows))
	for i, r := range sourceRows {
		filtered[i] = r.Filter(keep)
	}

	strategy := datadiff.ByPrimaryKey()
	if len(m.KeyColumns) > 0 {
		strategy = datadiff.ByCompositeKey(m.KeyColumns...)
	}

	diff, err := datadiff.Compare(filtered, targetRows, cfg.diffConfig(strategy))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "compare table %q", m.TargetTable)
	}

	return diff, planner.Plan(diff, cfg.plannerConfig()), nil
}

// runTable implements spec.md's per-table pipeline: stream, filter,
// diff, plan, generate, execute, with progress emitted at table start,
// per batch, and table end.
func (o *Orchestrator) runTable(ctx context.Context, m TableMapping, targetInfo *schema.TableInfo, cfg Config) (*executor.MigrationResult, error) {
	_, plan, err := o.diffAndPlan(ctx, m, targetInfo, cfg)
	if err != nil {
		return nil, err
	}

	dialect, err := sqlgen.DialectFor(o.Target.EngineTag())
	if err != nil {
		return nil, errors.Wrapf(err, "SQL dialect for table %q", m.TargetTable)
	}
	gen := sqlgen.NewGenerator(dialect)

	keyCols := m.KeyColumns
	if len(keyCols) == 0 {
		keyCols = []string{"id"}
	}

	var ops executor.Operations
	skipped := 0

	for _, r := range plan.ToInsert {
		prepared, _, ok := sqlgen.PrepareRowForInsert(r, *targetInfo)
		if !ok {
			skipped++
			continue
		}
		ops.Inserts = append(ops.Inserts, executor.Statement{SQL: gen.GenerateInsert(m.TargetTable, prepared)})
	}

	for _, u := range plan.ToUpdate {
		sql := gen.GeneratePartialUpdate(m.TargetTable, u.Row, u.ChangedColumns, keyCols)
		if sql == "" {
			skipped++
			continue
		}
		ops.Updates = append(ops.Updates, executor.Statement{SQL: sql})
	}

	for _, r := range plan.ToDelete {
		ops.Deletes = append(ops.Deletes, executor.Statement{SQL: gen.GenerateDelete(m.TargetTable, r, keyCols)})
	}

	total := len(ops.Inserts) + len(ops.Updates) + len(ops.Deletes) + skipped

	o.emitProgress(cfg.MigrationID, m.TargetTable, 0, total, 0, 0, 0, skipped, 0, "running")

	var inserted, updated, deleted, errCount int
	processed := skipped
	execCfg := cfg.executorConfig()
	execCfg.Cancel = o.Cancel
	execCfg.ReviewCount = len(plan.ToReview)
	execCfg.OnBatch = func(category string, size int, err error) {
		processed += size
		if err == nil {
			switch category {
			case "insert":
				inserted += size
			case "update":
				updated += size
			case "delete":
				deleted += size
			}
		} else {
			errCount++
		}
		o.emitProgress(cfg.MigrationID, m.TargetTable, processed, total, inserted, updated, deleted, skipped, errCount, "running")
	}

	result := executor.Execute(ctx, o.Target, ops, execCfg)
	result.RowsSkipped += skipped

	o.emitProgress(cfg.MigrationID, m.TargetTable, total, total,
		result.RowsInserted, result.RowsUpdated, result.RowsDeleted, result.RowsSkipped, len(result.Errors), "completed")

	return result, nil
}

func (o *Orchestrator) emitProgress(migrationID, table string, processed, total, inserted, updated, deleted, skipped, errCount int, status string) {
	o.Sink.Emit("migration:progress", map[string]any{
		"migration_id":   migrationID,
		"table":          table,
		"processed_rows": processed,
		"total_rows":     total,
		"inserted":       inserted,
		"updated":        updated,
		"deleted":        deleted,
		"skipped":        skipped,
		"errors":         errCount,
		"status":         status,
	})
}

func columnNames(info *schema.TableInfo) []string {
	if info == nil {
		return nil
	}
	names := make([]string, len(info.Columns))
	for i, c := range info.Columns {
		names[i] = c.Name
	}
	return names
}
