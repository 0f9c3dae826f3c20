package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/config"
	"github.com/pseudomuto/dbmig/pkg/orchestrator"
	"github.com/urfave/cli/v3"
)

func planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Show the operations a migration request would perform, without applying them",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "request", Required: true, Usage: "path to a migration request YAML file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPlan(ctx, cmd.String("request"))
		},
	}
}

func runPlan(ctx context.Context, requestPath string) error {
	req, err := config.LoadRequestFile(requestPath)
	if err != nil {
		return errors.Wrap(err, "load migration request")
	}

	mappings, orchCfg, err := config.ToOrchestratorInputs(*req)
	if err != nil {
		return errors.Wrap(err, "convert migration request")
	}

	// This CLI has no connection registry: a request's connection IDs
	// are taken directly as DSNs.
	source, target, err := connectPair(ctx, req.SourceConnectionID, req.TargetConnectionID)
	if err != nil {
		return err
	}
	defer func() { _ = source.Disconnect(ctx) }()
	defer func() { _ = target.Disconnect(ctx) }()

	o := orchestrator.New(source, target, nil, nil)
	plans, err := o.Plan(ctx, mappings, orchCfg)
	if err != nil {
		return errors.Wrap(err, "plan migration")
	}

	for _, tp := range plans {
		fmt.Printf("table: %s -> %s\n", tp.TableMapping.SourceTable, tp.TableMapping.TargetTable)
		fmt.Printf("  insert: %d\n", len(tp.Plan.ToInsert))
		fmt.Printf("  update: %d\n", len(tp.Plan.ToUpdate))
		fmt.Printf("  delete: %d\n", len(tp.Plan.ToDelete))
		fmt.Printf("  review: %d\n", len(tp.Plan.ToReview))
		fmt.Printf("  batches: %d\n", tp.Plan.BatchCount)
	}
	return nil
}
