/*
Copyright © 2025 The fpltable Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/edwardanalytics/fpltable/internal/ioexport"
	"github.com/edwardanalytics/fpltable/internal/iostore"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Load joined tables into a database",
		Long: `Load joined tables and player summaries of all seasons into the
warehouse configured in the export section of config.yaml.

Supported drivers:
  sqlite    a single file, fpltable.sqlite in the data directory
  postgres  a PostgreSQL database

Rows of a season are replaced as a whole, so export can be repeated.
Every run stamps its rows with a new batch id.

Examples:
  fpltable export
  FPLTABLE_EXPORT_DRIVER=postgres fpltable export`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return exportCmd
}

func runExport() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := iostore.New(cfg.DataPath())
	exp, err := ioexport.New(ctx, cfg, store)
	if err != nil {
		return err
	}
	defer exp.Close()

	gn.Info("Exporting to <em>%s</em> warehouse", cfg.Export.Driver)
	n, err := exp.Export(ctx)
	if err != nil {
		slog.Error("Export failed", "error", err)
		return err
	}
	slog.Info("Export finished", "seasons", n)
	return nil
}
