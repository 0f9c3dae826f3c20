package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/config"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/orchestrator"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply a migration request",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "request", Required: true, Usage: "path to a migration request YAML file"},
			&cli.StringFlag{Name: "id", Usage: "migration ID reported in progress events"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runMigrate(ctx, cmd.String("request"), cmd.String("id"))
		},
	}
}

// slogSink reports orchestrator progress through the default logger.
type slogSink struct{}

func (slogSink) Emit(event string, payload map[string]any) {
	args := make([]any, 0, len(payload)*2)
	for k, v := range payload {
		args = append(args, k, v)
	}
	slog.Info(event, args...)
}

func runMigrate(ctx context.Context, requestPath, migrationID string) error {
	req, err := config.LoadRequestFile(requestPath)
	if err != nil {
		return errors.Wrap(err, "load migration request")
	}

	mappings, orchCfg, err := config.ToOrchestratorInputs(*req)
	if err != nil {
		return errors.Wrap(err, "convert migration request")
	}
	if migrationID != "" {
		orchCfg.MigrationID = migrationID
	}

	// This CLI has no connection registry: a request's connection IDs
	// are taken directly as DSNs.
	source, target, err := connectPair(ctx, req.SourceConnectionID, req.TargetConnectionID)
	if err != nil {
		return err
	}
	defer func() { _ = source.Disconnect(ctx) }()
	defer func() { _ = target.Disconnect(ctx) }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cancel := engine.NewCancelToken()
	go func() {
		<-ctx.Done()
		slog.Warn("cancellation requested, stopping before the next statement")
		cancel.Cancel()
	}()

	o := orchestrator.New(source, target, slogSink{}, cancel)
	result, err := o.Run(ctx, mappings, orchCfg)
	if err != nil {
		return errors.Wrap(err, "run migration")
	}

	fmt.Printf("status:  %s\n", result.Status)
	fmt.Printf("inserted: %d\n", result.RowsInserted)
	fmt.Printf("updated:  %d\n", result.RowsUpdated)
	fmt.Printf("deleted:  %d\n", result.RowsDeleted)
	fmt.Printf("skipped:  %d\n", result.RowsSkipped)
	fmt.Printf("errors:   %d\n", result.ErrorCount)
	fmt.Printf("duration: %dms\n", result.DurationMs)
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if result.Status != orchestrator.StatusCompleted {
		return errors.Errorf("migration finished with status %q", result.Status)
	}
	return nil
}
