package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/htygo/ingest"
	"github.com/hupe1980/htygo/metadata"
)

func rowsOf(m *metadata.Metadata) int {
	if m == nil {
		return 0
	}
	return m.NumRows
}

func colsOf(m *metadata.Metadata) int {
	if m == nil {
		return 0
	}
	return m.TotalColumns()
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert CSV files to HTY",
		ArgsUsage: "CSV_FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output .hty path (single input only)",
			},
			&cli.StringFlag{
				Name:  "out-dir",
				Usage: "Output directory (defaults to each input's directory)",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Max concurrent conversions",
				Value:   4,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs := cmd.Args().Slice()
			if len(inputs) == 0 {
				return fmt.Errorf("no input files")
			}
			if cmd.String("output") != "" && len(inputs) > 1 {
				return fmt.Errorf("--output is only valid with a single input; use --out-dir")
			}

			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			// Files are independent; the engine itself stays single-threaded
			// per file.
			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(int(cmd.Int("jobs")))

			for _, in := range inputs {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out := outputPath(in, cmd.String("output"), cmd.String("out-dir"))
					m, err := ingest.FromCSV(in, out, nil)
					logger.LogConvert(in, out, rowsOf(m), colsOf(m), err)
					if err != nil {
						return fmt.Errorf("convert %s: %w", in, err)
					}
					return nil
				})
			}
			return g.Wait()
		},
	}
}

func outputPath(input, output, outDir string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".hty"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
