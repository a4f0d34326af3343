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
	"strconv"

	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getJoinCmd returns the join command.
func getJoinCmd() *cobra.Command {
	var seasonArg string

	joinCmd := &cobra.Command{
		Use:   "join",
		Short: "Rebuild joined tables from saved artifacts",
		Long: `Join FPL team summaries with actual standings without fetching
anything.

Without --season every season with FPL summaries in the data directory
is joined. Team names are reconciled with team_names.yaml, edit it and
rerun join when a team is reported as unmapped.

Examples:
  fpltable join
  fpltable join --season 2023-24
  fpltable join -s 2023`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runJoin(seasonArg)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	joinCmd.Flags().StringVarP(
		&seasonArg, "season", "s", "",
		"season label (2023-24) or start year (2023), empty for all",
	)

	return joinCmd
}

func runJoin(seasonArg string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := newRefresher(cfg)
	if err != nil {
		return err
	}

	if seasonArg == "" {
		return r.JoinAll(ctx)
	}

	s, err := parseSeason(seasonArg)
	if err != nil {
		return err
	}
	report, err := r.JoinSeason(ctx, s)
	if err != nil {
		slog.Error("Join failed", "season", s.Label(), "error", err)
		return err
	}
	if report.Empty() {
		gn.Info("Joined season <em>%s</em>", s.Label())
	} else {
		gn.Info("Joined season <em>%s</em>, <em>%d</em> teams dropped",
			s.Label(), report.Dropped())
	}
	return nil
}

// parseSeason accepts either a full label or a start year.
func parseSeason(arg string) (season.Season, error) {
	if len(arg) == 4 {
		start, err := strconv.Atoi(arg)
		if err != nil {
			return season.Season{}, season.InvalidSeasonError(arg)
		}
		return season.New(start)
	}
	return season.Parse(arg)
}
