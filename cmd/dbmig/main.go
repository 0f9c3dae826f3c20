// Command dbmig compares and migrates data and schema between two
// database connections using the cross-engine comparison and migration
// core in this module's pkg/ tree.
//
// Usage:
//
//	# Show schema differences between a source and target
//	dbmig diff --source clickhouse://localhost:9000 --target clickhouse://localhost:9001
//
//	# Compare one table's data without writing anything
//	dbmig compare --source clickhouse://localhost:9000 --target clickhouse://localhost:9001 --table users
//
//	# Show the operations a migration request would perform, without applying them
//	dbmig plan --request migration.yaml
//
//	# Apply a migration request
//	dbmig migrate --request migration.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Build-time variables set by the release tooling.
var (
	version string = "local"
	commit  string = "local"
	date    string = time.Now().UTC().Format(time.RFC3339)
)

func main() {
	if err := run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
