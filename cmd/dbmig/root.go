package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "dbmig",
		Usage:   "Compare and migrate data and schema across database engines",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, or error",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			slog.SetDefault(newLogger(cmd.String("log-level")))
			return ctx, nil
		},
		Commands: []*cli.Command{
			diffCommand(),
			compareCommand(),
			planCommand(),
			migrateCommand(),
		},
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version)
		fmt.Fprintln(cmd.Writer, "Commit:", commit)
		fmt.Fprintln(cmd.Writer, "Date:", date)
	}

	return app.Run(ctx, args)
}
