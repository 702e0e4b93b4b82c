package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/hupe1980/htygo/persistence"
)

func pushCmd() *cli.Command {
	return &cli.Command{
		Name:      "push",
		Usage:     "Upload an HTY file to the configured remote store",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Remote blob name (defaults to the file's base name)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			path := cmd.Args().First()

			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			store, err := cfg.buildStore(ctx)
			if err != nil {
				return err
			}

			name := cmd.String("name")
			if name == "" {
				name = filepath.Base(path)
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			w, err := store.Create(ctx, name)
			if err != nil {
				return err
			}
			if _, err := io.Copy(w, f); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}

			logger.Info("pushed", "file", path, "name", name)
			return nil
		},
	}
}

func pullCmd() *cli.Command {
	return &cli.Command{
		Name:      "pull",
		Usage:     "Download an HTY file from the configured remote store",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Local destination path (defaults to the blob name)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one name argument")
			}
			name := cmd.Args().First()

			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			store, err := cfg.buildStore(ctx)
			if err != nil {
				return err
			}

			blob, err := store.Open(ctx, name)
			if err != nil {
				return err
			}
			defer blob.Close()

			rc, err := blob.ReadRange(ctx, 0, blob.Size())
			if err != nil {
				return err
			}
			defer rc.Close()

			out := cmd.String("output")
			if out == "" {
				out = filepath.Base(name)
			}

			// Land the download atomically so a broken transfer never leaves
			// a truncated HTY file behind.
			err = persistence.SaveToFile(out, func(w io.Writer) error {
				_, err := io.Copy(w, rc)
				return err
			})
			if err != nil {
				return err
			}

			logger.Info("pulled", "name", name, "file", out, "bytes", blob.Size())
			return nil
		},
	}
}

func lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List HTY files in the configured remote store",
		ArgsUsage: "[PREFIX]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			store, err := cfg.buildStore(ctx)
			if err != nil {
				return err
			}

			names, err := store.List(ctx, cmd.Args().First())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
