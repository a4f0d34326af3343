// Package iorefresh implements pipeline.Refresher. It fetches fantasy
// data and standings, stores season artifacts and joins them into
// comparison tables. Batch operations isolate failures per season.
package iorefresh

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/edwardanalytics/fpltable/internal/iostore"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/join"
	"github.com/edwardanalytics/fpltable/pkg/meta"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/edwardanalytics/fpltable/pkg/reconcile"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

type refresher struct {
	cfg       *config.Config
	fantasy   pipeline.FantasySource
	standings pipeline.StandingsSource
	store     pipeline.Store
	gate      meta.Gate
	mapping   reconcile.Mapping
	log       *slog.Logger
	now       func() time.Time
	progress  bool
}

// Sources groups the upstream providers of the pipeline.
type Sources struct {
	Fantasy   pipeline.FantasySource
	Standings pipeline.StandingsSource
}

// New creates a Refresher. Every Refresher gets its own run id, which
// is attached to all its log entries.
func New(
	cfg *config.Config,
	src Sources,
	store pipeline.Store,
	gate meta.Gate,
	mapping reconcile.Mapping,
) pipeline.Refresher {
	runID := uuid.NewString()
	return &refresher{
		cfg:       cfg,
		fantasy:   src.Fantasy,
		standings: src.Standings,
		store:     store,
		gate:      gate,
		mapping:   mapping,
		log:       slog.With("run_id", runID),
		now:       time.Now,
		progress:  true,
	}
}

func (r *refresher) Refresh(ctx context.Context) (bool, error) {
	startTime := time.Now()
	s, err := season.Current(r.now())
	if err != nil {
		return false, err
	}
	r.log.Info("Starting refresh", "season", s.Label())

	gw, err := r.fantasy.CurrentGameweek(ctx, s)
	if isCode(err, errcode.NoGameweekDataError) {
		gn.Info("Current data up to date: first gameweek of <em>%s</em> "+
			"is not available yet", s.Label())
		r.log.Info("No gameweek data yet", "season", s.Label())
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if r.cfg.Refresh.Force {
		r.log.Info("Forced refresh, skipping gameweek check", "gameweek", gw)
		if err = r.gate.Record(ctx, gw); err != nil {
			return false, err
		}
	} else {
		proceed, err := r.gate.Check(ctx, gw)
		if err != nil {
			return false, err
		}
		if !proceed {
			gn.Info("Scoring data is up to date with gameweek <em>%d</em>", gw)
			return false, nil
		}
	}

	gn.Info("Refreshing season <em>%s</em>, gameweek <em>%d</em>",
		s.Label(), gw)
	if err = r.ingestFantasy(ctx, s); err != nil {
		return false, err
	}
	if err = r.ingestStandings(ctx, s); err != nil {
		return false, err
	}

	if err = r.JoinAll(ctx); err != nil {
		return false, err
	}

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	r.log.Info("Refresh complete", "season", s.Label(), "gameweek", gw,
		"duration", dur)
	gn.Info("Refresh complete in <em>%s</em>", dur)
	return true, nil
}

func (r *refresher) Backfill(ctx context.Context, first, last int) error {
	startTime := time.Now()
	seasons, err := season.Range(first, last)
	if err != nil {
		return err
	}

	opts := r.cfg.Refresh
	if opts.SkipFantasy && opts.SkipStandings {
		gn.Info("Nothing to fetch, joining stored seasons")
		return r.JoinAll(ctx)
	}

	r.log.Info("Starting backfill",
		"first", seasons[0].Label(),
		"last", seasons[len(seasons)-1].Label(),
		"skip_fantasy", opts.SkipFantasy,
		"skip_standings", opts.SkipStandings,
	)

	successCount := 0
	errorCount := 0
	bar := r.startBar(len(seasons), "Backfilling seasons: ")

	for _, s := range seasons {
		select {
		case <-ctx.Done():
			r.finishBar(bar)
			return CancelledError(ctx.Err())
		default:
		}

		err := r.ingestSeason(ctx, s)
		r.addBar(bar)
		if err != nil {
			errorCount++
			r.log.Error("Failed to backfill season",
				"season", s.Label(),
				"error", err,
			)
			continue
		}
		successCount++
	}
	r.finishBar(bar)

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	r.log.Info("Backfill complete",
		"success", successCount,
		"errors", errorCount,
		"total", len(seasons),
		"duration", dur,
	)
	gn.Info(`Backfill complete
Seasons succeeded: %d, failed %d, total %d.
		Elapsed time: <em>%s</em>
`,
		successCount,
		errorCount,
		len(seasons),
		dur,
	)

	if errorCount > 0 && successCount == 0 {
		return AllSeasonsFailedError("backfill", errorCount)
	}
	if errorCount > 0 {
		r.log.Warn("Some seasons failed to backfill",
			"failed", errorCount,
			"succeeded", successCount)
	}

	return r.JoinAll(ctx)
}

func (r *refresher) JoinAll(ctx context.Context) error {
	startTime := time.Now()
	labels, err := r.store.ListFantasySeasons()
	if err != nil {
		return err
	}
	reg, skipped := season.NewRegistry(labels)
	for _, v := range skipped {
		r.log.Warn("Ignoring artifact with invalid season label", "label", v)
	}
	if reg.Len() == 0 {
		return season.EmptyRegistryError()
	}

	successCount := 0
	errorCount := 0
	var dropped int
	seasons := reg.Seasons()
	bar := r.startBar(len(seasons), "Joining seasons: ")

	for _, s := range seasons {
		select {
		case <-ctx.Done():
			r.finishBar(bar)
			return CancelledError(ctx.Err())
		default:
		}

		report, err := r.JoinSeason(ctx, s)
		r.addBar(bar)
		if err != nil {
			errorCount++
			r.log.Error("Failed to join season",
				"season", s.Label(),
				"error", err,
			)
			continue
		}
		dropped += report.Dropped()
		successCount++
	}
	r.finishBar(bar)

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	r.log.Info("Join complete",
		"success", successCount,
		"errors", errorCount,
		"total", len(seasons),
		"dropped_teams", dropped,
		"duration", dur,
	)
	gn.Info(`Join complete
Seasons succeeded: %d, failed %d, total %d.
		Elapsed time: <em>%s</em>
`,
		successCount,
		errorCount,
		len(seasons),
		dur,
	)

	if errorCount > 0 && successCount == 0 {
		return AllSeasonsFailedError("join", errorCount)
	}
	if errorCount > 0 {
		r.log.Warn("Some seasons failed to join",
			"failed", errorCount,
			"succeeded", successCount)
	}
	return nil
}

func (r *refresher) JoinSeason(
	_ context.Context,
	s season.Season,
) (join.Report, error) {
	teams, err := r.store.ReadTeams(s)
	if err != nil {
		return join.Report{}, SeasonFailedError(s.Label(), err)
	}

	table, err := r.store.ReadStandings(s)
	if iostore.IsMissing(err) {
		r.log.Warn("No standings for season, writing empty joined table",
			"season", s.Label())
		if err = r.store.WriteJoined(s, nil); err != nil {
			return join.Report{}, SeasonFailedError(s.Label(), err)
		}
		return join.Report{}, nil
	}
	if err != nil {
		return join.Report{}, SeasonFailedError(s.Label(), err)
	}

	res := join.Join(teams, table, r.mapping)
	r.logReport(s, res.Report)

	if err = r.store.WriteJoined(s, res.Rows); err != nil {
		return join.Report{}, SeasonFailedError(s.Label(), err)
	}
	r.log.Info("Joined season", "season", s.Label(), "teams", len(res.Rows))
	return res.Report, nil
}

// ingestSeason fetches and stores the artifacts of a completed season.
func (r *refresher) ingestSeason(ctx context.Context, s season.Season) error {
	if !r.cfg.Refresh.SkipFantasy {
		if err := r.ingestFantasy(ctx, s); err != nil {
			return SeasonFailedError(s.Label(), err)
		}
	}
	if !r.cfg.Refresh.SkipStandings {
		if err := r.ingestStandings(ctx, s); err != nil {
			return SeasonFailedError(s.Label(), err)
		}
	}
	return nil
}

func (r *refresher) ingestFantasy(ctx context.Context, s season.Season) error {
	recs, err := r.fantasy.Records(ctx, s)
	if err != nil {
		return err
	}
	sum := fantasy.Summarize(recs)
	if err = r.store.WriteTeams(s, sum.Teams); err != nil {
		return err
	}
	if err = r.store.WritePlayers(s, sum.Players); err != nil {
		return err
	}
	r.log.Info("Stored fantasy summaries",
		"season", s.Label(),
		"records", len(recs),
		"teams", len(sum.Teams),
		"players", len(sum.Players),
	)
	gn.Message("<em>%s: summarized %s gameweek records into %d teams</em>",
		s.Label(), humanize.Comma(int64(len(recs))), len(sum.Teams))
	return nil
}

func (r *refresher) ingestStandings(ctx context.Context, s season.Season) error {
	table, err := r.standings.Standings(ctx, s)
	if err != nil {
		return err
	}
	if err = r.store.WriteStandings(s, table); err != nil {
		return err
	}
	r.log.Info("Stored standings", "season", s.Label(), "teams", len(table))
	return nil
}

func (r *refresher) logReport(s season.Season, rep join.Report) {
	if rep.Empty() {
		return
	}
	for _, v := range rep.Unmapped {
		r.log.Warn("Team has no mapping entry", "season", s.Label(), "team", v)
	}
	for _, v := range rep.Unmatched {
		r.log.Warn("Mapped team is absent from standings",
			"season", s.Label(), "team", v)
	}
	for _, v := range rep.StandingsOnly {
		r.log.Warn("Standings team has no fantasy data",
			"season", s.Label(), "team", v)
	}
	if rep.Dropped() > 0 {
		names := append(append([]string{}, rep.Unmapped...), rep.Unmatched...)
		gn.Warn("Season <em>%s</em> dropped %s: %s",
			s.Label(), pluralTeams(rep.Dropped()), strings.Join(names, ", "))
	}
}

func pluralTeams(n int) string {
	if n == 1 {
		return "1 team"
	}
	return fmt.Sprintf("%d teams", n)
}

func (r *refresher) startBar(total int, prefix string) *pb.ProgressBar {
	if !r.progress {
		return nil
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

func (r *refresher) addBar(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Increment()
	}
}

func (r *refresher) finishBar(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}

func isCode(err error, code gn.ErrorCode) bool {
	gnErr, ok := err.(*gn.Error)
	return ok && gnErr.Code == code
}
