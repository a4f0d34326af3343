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

	"github.com/edwardanalytics/fpltable/internal/iofantasy"
	"github.com/edwardanalytics/fpltable/internal/iofetch"
	"github.com/edwardanalytics/fpltable/internal/iomapping"
	"github.com/edwardanalytics/fpltable/internal/iometa"
	"github.com/edwardanalytics/fpltable/internal/iorefresh"
	"github.com/edwardanalytics/fpltable/internal/iostandings"
	"github.com/edwardanalytics/fpltable/internal/iostore"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRefreshCmd returns the refresh command.
func getRefreshCmd() *cobra.Command {
	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Ingest the latest gameweek of the current season",
		Long: `Refresh the current season and rebuild all joined tables.

This command:
  1. Loads the team name mapping
  2. Finds the current season (it starts in August)
  3. Checks the latest gameweek with FPL scoring data
  4. Stops if that gameweek was already ingested
  5. Saves FPL team and player summaries of the season
  6. Saves the actual Premier League standings
  7. Joins every season found in the data directory

The last ingested gameweek is kept in scoring_meta.json of the
data directory. Use --force to refresh regardless of it.

Examples:
  # Weekly run, for example from cron
  fpltable refresh

  # Refresh even if the gameweek did not change
  fpltable refresh --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRefresh(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	refreshCmd.Flags().BoolP(
		"force", "f", false,
		"refresh even if the gameweek was already ingested",
	)

	return refreshCmd
}

func runRefresh(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg.Update(flagOptions(cmd, forceFlag))

	r, err := newRefresher(cfg)
	if err != nil {
		return err
	}

	updated, err := r.Refresh(ctx)
	if err != nil {
		slog.Error("Refresh failed", "error", err)
		return err
	}
	slog.Info("Refresh finished", "updated", updated)
	return nil
}

// newRefresher wires the HTTP sources, the artifact store, the metadata
// gate and the team name mapping into a Refresher.
func newRefresher(cfg *config.Config) (pipeline.Refresher, error) {
	mapping, err := iomapping.Load(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("Team name mapping loaded", "teams", mapping.Len())

	client := iofetch.New(cfg)
	src := iorefresh.Sources{
		Fantasy:   iofantasy.New(cfg, client),
		Standings: iostandings.New(cfg, client),
	}
	dataDir := cfg.DataPath()
	return iorefresh.New(
		cfg,
		src,
		iostore.New(dataDir),
		iometa.New(dataDir),
		mapping,
	), nil
}
