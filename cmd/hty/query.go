package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	htygo "github.com/hupe1980/htygo"
	"github.com/hupe1980/htygo/format"
	"github.com/hupe1980/htygo/metadata"
)

func projectCmd() *cli.Command {
	return &cli.Command{
		Name:      "project",
		Usage:     "Print one or more columns (all must share a group)",
		ArgsUsage: "COLUMN...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "HTY file to query",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "where",
				Usage: `Optional predicate on a same-group column, e.g. "fare > 10"`,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			columns := cmd.Args().Slice()

			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			db := htygo.Open(cmd.String("file"), htygo.WithLogger(logger))
			logger = logger.WithPath(db.Path())

			var out [][]float32
			if where := cmd.String("where"); where != "" {
				col, op, threshold, err := parsePredicate(where)
				if err != nil {
					return err
				}
				out, err = db.ProjectFiltered(columns, col, op, threshold)
				logger.LogQuery("project_filtered", columns, resultRows(out), err)
				if err != nil {
					return err
				}
			} else {
				out, err = db.Project(columns...)
				logger.LogQuery("project", columns, resultRows(out), err)
				if err != nil {
					return err
				}
			}

			printColumns(columns, out)
			return nil
		},
	}
}

func filterCmd() *cli.Command {
	return &cli.Command{
		Name:      "filter",
		Usage:     "Print the values of one column that satisfy a predicate",
		ArgsUsage: `PREDICATE (e.g. "fare > 10")`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "HTY file to query",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			col, op, threshold, err := parsePredicate(strings.Join(cmd.Args().Slice(), " "))
			if err != nil {
				return err
			}

			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			db := htygo.Open(cmd.String("file"), htygo.WithLogger(logger))

			out, err := db.Filter(col, op, threshold)
			logger.WithPath(db.Path()).LogQuery("filter", []string{col}, len(out), err)
			if err != nil {
				return err
			}

			printColumns([]string{col}, [][]float32{out})
			return nil
		},
	}
}

func resultRows(cols [][]float32) int {
	if len(cols) == 0 {
		return 0
	}
	return len(cols[0])
}

// parsePredicate splits "column op value" into its parts.
func parsePredicate(s string) (string, metadata.Operator, float32, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return "", "", 0, fmt.Errorf("predicate must be \"COLUMN OP VALUE\", got %q", s)
	}

	op, err := metadata.ParseOperator(fields[1])
	if err != nil {
		return "", "", 0, err
	}

	var threshold float64
	if _, err := fmt.Sscanf(fields[2], "%g", &threshold); err != nil {
		return "", "", 0, fmt.Errorf("invalid threshold %q: %w", fields[2], err)
	}

	return fields[0], op, float32(threshold), nil
}

// printColumns renders result sequences: a header line of column names, then
// one line per row.
func printColumns(names []string, cols [][]float32) {
	fmt.Fprintln(os.Stdout, strings.Join(names, ","))
	if len(cols) == 0 {
		return
	}
	for row := 0; row < len(cols[0]); row++ {
		parts := make([]string, len(cols))
		for i := range cols {
			parts[i] = format.Float(cols[i][row])
		}
		fmt.Fprintln(os.Stdout, strings.Join(parts, ","))
	}
}
