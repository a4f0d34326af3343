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
	"time"

	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// firstFantasySeason is the earliest season with published FPL
// gameweek data.
const firstFantasySeason = 2016

// getBackfillCmd returns the backfill command.
func getBackfillCmd() *cobra.Command {
	var first, last int

	backfillCmd := &cobra.Command{
		Use:   "backfill",
		Short: "Ingest completed seasons",
		Long: `Fetch FPL summaries and standings of a range of completed seasons,
then join all seasons of the data directory.

Every season is processed on its own: a failing season is logged and
skipped, the command fails only when all seasons fail.

Seasons are given by their start year, 2023 means 2023-24.

Examples:
  # All seasons from 2016-17 to 2023-24
  fpltable backfill --first 2016 --last 2023

  # Only refetch standings
  fpltable backfill -a 2020 -z 2022 --skip-fantasy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBackfill(cmd, first, last)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	backfillCmd.Flags().IntVarP(
		&first, "first", "a", firstFantasySeason,
		"start year of the first season",
	)
	backfillCmd.Flags().IntVarP(
		&last, "last", "z", season.CurrentStart(time.Now())-1,
		"start year of the last season",
	)
	backfillCmd.Flags().Bool(
		"skip-fantasy", false,
		"keep existing FPL summaries",
	)
	backfillCmd.Flags().Bool(
		"skip-standings", false,
		"keep existing standings",
	)

	return backfillCmd
}

func runBackfill(cmd *cobra.Command, first, last int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := season.Range(first, last); err != nil {
		return err
	}

	cfg.Update(flagOptions(cmd, skipFantasyFlag, skipStandingsFlag))

	r, err := newRefresher(cfg)
	if err != nil {
		return err
	}

	if err = r.Backfill(ctx, first, last); err != nil {
		slog.Error("Backfill failed", "error", err)
		return err
	}
	return nil
}
