package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/engine"
	"github.com/pseudomuto/dbmig/pkg/schemadiff"
	"github.com/urfave/cli/v3"
)

func diffCommand() *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "Compare schema between a source and target connection",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Required: true, Usage: "source DSN, e.g. clickhouse://localhost:9000"},
			&cli.StringFlag{Name: "target", Required: true, Usage: "target DSN, e.g. clickhouse://localhost:9001"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDiff(ctx, cmd.String("source"), cmd.String("target"))
		},
	}
}

func runDiff(ctx context.Context, sourceDSN, targetDSN string) error {
	source, target, err := connectPair(ctx, sourceDSN, targetDSN)
	if err != nil {
		return err
	}
	defer func() { _ = source.Disconnect(ctx) }()
	defer func() { _ = target.Disconnect(ctx) }()

	sourceSchema, err := source.GetSchema(ctx)
	if err != nil {
		return errors.Wrap(err, "read source schema")
	}
	targetSchema, err := target.GetSchema(ctx)
	if err != nil {
		return errors.Wrap(err, "read target schema")
	}

	result := schemadiff.Diff(sourceDSN, targetDSN, sourceSchema.Tables, targetSchema.Tables, schemadiff.Config{
		SourceEngine: source.EngineTag(),
		TargetEngine: target.EngineTag(),
	})

	for _, change := range result.Changes {
		if change.ChangeType == schemadiff.Unchanged {
			continue
		}
		fmt.Printf("%-10s %-10s %s\n", change.ChangeType, change.ObjectType, change.ObjectName)
		for _, d := range change.Details {
			fmt.Printf("    %s: %s -> %s\n", d.Property, deref(d.SourceValue), deref(d.TargetValue))
		}
	}

	fmt.Println()
	for _, kind := range []schemadiff.ChangeType{schemadiff.Added, schemadiff.Removed, schemadiff.Modified, schemadiff.Unchanged} {
		fmt.Printf("%s: %d\n", kind, result.Summary[kind])
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "<none>"
	}
	return *s
}

func connectPair(ctx context.Context, sourceDSN, targetDSN string) (engine.EngineDriver, engine.EngineDriver, error) {
	source, err := resolveDriver(sourceDSN)
	if err != nil {
		return nil, nil, errors.Wrap(err, "source")
	}
	target, err := resolveDriver(targetDSN)
	if err != nil {
		return nil, nil, errors.Wrap(err, "target")
	}
	if err := source.Connect(ctx); err != nil {
		return nil, nil, errors.Wrap(err, "connect source")
	}
	if err := target.Connect(ctx); err != nil {
		_ = source.Disconnect(ctx)
		return nil, nil, errors.Wrap(err, "connect target")
	}
	slog.Debug("connected", "source", sourceDSN, "target", targetDSN)
	return source, target, nil
}
