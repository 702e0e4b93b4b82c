package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	htygo "github.com/hupe1980/htygo"
	"github.com/hupe1980/htygo/metadata"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print an HTY file's trailer metadata",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			path := cmd.Args().First()

			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			m, err := htygo.Open(path, htygo.WithLogger(logger)).Metadata()
			if err != nil {
				return err
			}

			printMetadata(path, m)
			return nil
		},
	}
}

func printMetadata(path string, m *metadata.Metadata) {
	fmt.Printf("%s\n", path)
	fmt.Printf("  rows:    %d\n", m.NumRows)
	fmt.Printf("  groups:  %d\n", m.NumGroups)
	fmt.Printf("  columns: %d\n", m.TotalColumns())
	for gi, g := range m.Groups {
		fmt.Printf("  group %d: offset=%d num_columns=%d size=%d\n",
			gi, g.Offset, g.NumColumns, g.BlockSize(m.NumRows))
		for _, col := range g.Columns {
			fmt.Printf("    %s (%s)\n", col.Name, col.Type)
		}
	}
}
