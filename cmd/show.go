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
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/edwardanalytics/fpltable/internal/iostore"
	"github.com/edwardanalytics/fpltable/pkg/join"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var (
		seasonArg string
		wide      bool
	)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print a joined table",
		Long: `Print the joined table of a season to the terminal.

Without --season the latest joined season is shown. By default only
the ranking columns are printed, use --wide for all statistics.

Examples:
  fpltable show
  fpltable show --season 2023-24 --wide`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(os.Stdout, seasonArg, wide)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	showCmd.Flags().StringVarP(
		&seasonArg, "season", "s", "",
		"season label (2023-24) or start year (2023), empty for latest",
	)
	showCmd.Flags().BoolVarP(
		&wide, "wide", "w", false,
		"print all statistics",
	)

	return showCmd
}

func runShow(w io.Writer, seasonArg string, wide bool) error {
	store := iostore.New(cfg.DataPath())

	s, err := showSeason(store, seasonArg)
	if err != nil {
		return err
	}

	rows, err := store.ReadJoined(s)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		gn.Warn("Joined table of <em>%s</em> is empty", s.Label())
		return nil
	}

	fmt.Fprintf(w, "\nSeason %s\n\n", s.Label())
	return renderTable(w, rows, wide)
}

// showSeason picks the requested season or the latest joined one.
func showSeason(store pipeline.Store, seasonArg string) (season.Season, error) {
	if seasonArg != "" {
		return parseSeason(seasonArg)
	}
	labels, err := store.ListJoinedSeasons()
	if err != nil {
		return season.Season{}, err
	}
	reg, _ := season.NewRegistry(labels)
	return reg.Latest()
}

// narrowColumns is the number of leading joined columns printed
// without --wide.
const narrowColumns = 5

// renderTable writes rows as aligned columns.
func renderTable(w io.Writer, rows []join.Row, wide bool) error {
	n := narrowColumns
	if wide {
		n = len(join.Columns)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(join.Columns[:n], "\t"))
	for _, v := range rows {
		fmt.Fprintln(tw, strings.Join(v.Record()[:n], "\t"))
	}
	return tw.Flush()
}
