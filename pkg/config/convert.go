package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/executor"
	"github.com/pseudomuto/dbmig/pkg/orchestrator"
	"github.com/pseudomuto/dbmig/pkg/planner"
)

var modes = map[string]planner.Mode{
	"SchemaOnly": planner.SchemaOnly,
	"AppendOnly": planner.AppendOnly,
	"Upsert":     planner.Upsert,
	"Merge":      planner.Merge,
	"Mirror":     planner.Mirror,
}

var conflictKinds = map[string]planner.ConflictKind{
	"SourceWins":   planner.SourceWins,
	"TargetWins":   planner.TargetWins,
	"NewestWins":   planner.NewestWins,
	"ManualReview": planner.ManualReview,
	"CustomRules":  planner.CustomRules,
}

var transactionModes = map[string]executor.TransactionMode{
	"PerBatch":       executor.PerBatch,
	"WholeMigration": executor.WholeMigration,
	"None":           executor.None,
}

func parseMode(s string) (planner.Mode, error) {
	if m, ok := modes[s]; ok {
		return m, nil
	}
	return "", errors.Wrapf(ErrConfig, "unrecognized mode %q", s)
}

func parseConflictKind(s string) (planner.ConflictKind, error) {
	if s == "" {
		return planner.SourceWins, nil
	}
	if k, ok := conflictKinds[s]; ok {
		return k, nil
	}
	return "", errors.Wrapf(ErrConfig, "unrecognized conflict_resolution %q", s)
}

func parseTransactionMode(s string) (executor.TransactionMode, error) {
	if s == "" {
		return executor.None, nil
	}
	if m, ok := transactionModes[s]; ok {
		return m, nil
	}
	return "", errors.Wrapf(ErrConfig, "unrecognized transaction_mode %q", s)
}

// validateKeyColumns rejects a mapping whose key column list contains
// an empty entry or a duplicate; an entirely empty list is valid and
// means "resolve automatically".
func validateKeyColumns(table string, cols []string) error {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if strings.TrimSpace(c) == "" {
			return errors.Wrapf(ErrConfig, "table %q: empty key column name", table)
		}
		if seen[c] {
			return errors.Wrapf(ErrConfig, "table %q: duplicate key column %q", table, c)
		}
		seen[c] = true
	}
	return nil
}

// ToOrchestratorInputs validates req and converts it into the
// orchestrator's own TableMapping list and Config.
func ToOrchestratorInputs(req MigrationRequest) ([]orchestrator.TableMapping, orchestrator.Config, error) {
	mode, err := parseMode(req.Config.Mode)
	if err != nil {
		return nil, orchestrator.Config{}, err
	}
	conflictKind, err := parseConflictKind(req.Config.ConflictResolution)
	if err != nil {
		return nil, orchestrator.Config{}, err
	}
	txMode, err := parseTransactionMode(req.Config.TransactionMode)
	if err != nil {
		return nil, orchestrator.Config{}, err
	}

	mappings := make([]orchestrator.TableMapping, len(req.Tables))
	for i, t := range req.Tables {
		if err := validateKeyColumns(t.TargetTable, t.KeyColumns); err != nil {
			return nil, orchestrator.Config{}, err
		}
		mappings[i] = orchestrator.TableMapping{
			SourceTable: t.SourceTable,
			TargetTable: t.TargetTable,
			KeyColumns:  t.KeyColumns,
		}
	}

	batchSize := req.Config.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	cfg := orchestrator.Config{
		Mode: mode,
		Conflict: planner.ConflictResolution{
			Kind:            conflictKind,
			TimestampColumn: req.Config.ConflictTimestampColumn,
			Rules:           req.Config.ConflictRules,
		},
		IgnoreColumns:       req.Config.IgnoreColumns,
		NormalizeWhitespace: req.Config.NormalizeWhitespace,
		CaseInsensitive:     req.Config.CaseInsensitive,
		NumericTolerance:    req.Config.NumericTolerance,
		NullEqualsEmpty:     req.Config.NullEqualsEmpty,
		UseHashMode:         req.Config.UseHashMode,
		BatchSize:           batchSize,
		RetryCount:          req.Config.RetryCount,
		RetryBackoffMs:      req.Config.RetryBackoffMs,
		AutoRollback:        req.Config.AutoRollback,
		TransactionMode:     txMode,
	}

	return mappings, cfg, nil
}
