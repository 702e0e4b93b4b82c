package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	htygo "github.com/hupe1980/htygo"
)

func addRowsCmd() *cli.Command {
	return &cli.Command{
		Name:      "add-rows",
		Usage:     "Append rows by writing a new file; the source is untouched",
		ArgsUsage: "ROW... (each row comma-separated, e.g. 7,8)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Source HTY file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Destination HTY file",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rows, err := parseRows(cmd.Args().Slice())
			if err != nil {
				return err
			}

			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			db := htygo.Open(cmd.String("file"), htygo.WithLogger(logger))
			dest := cmd.String("output")
			err = db.AddRows(dest, rows)
			logger.WithPath(db.Path()).LogAppend(dest, len(rows), err)
			if err != nil {
				return err
			}

			fmt.Printf("appended %d row(s) to %s\n", len(rows), dest)
			return nil
		},
	}
}

// parseRows converts "1,2" "3,4" argument style into row vectors. Every
// value must parse; the engine validates shape, not content.
func parseRows(args []string) ([][]float32, error) {
	rows := make([][]float32, 0, len(args))
	for i, arg := range args {
		fields := strings.Split(arg, ",")
		row := make([]float32, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid value %q", i, field)
			}
			row[j] = float32(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
