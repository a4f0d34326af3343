package cmd

import (
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/spf13/cobra"
)

// funcFlag turns an explicitly set flag into a config option.
type funcFlag func(cmd *cobra.Command) (config.Option, bool)

// flagOptions collects options of the flags the user actually set.
func flagOptions(cmd *cobra.Command, flags ...funcFlag) []config.Option {
	var res []config.Option
	for _, f := range flags {
		if opt, ok := f(cmd); ok {
			res = append(res, opt)
		}
	}
	return res
}

func boolFlag(name string, opt func(bool) config.Option) funcFlag {
	return func(cmd *cobra.Command) (config.Option, bool) {
		if !cmd.Flags().Changed(name) {
			return nil, false
		}
		v, err := cmd.Flags().GetBool(name)
		if err != nil {
			return nil, false
		}
		return opt(v), true
	}
}

var (
	forceFlag         = boolFlag("force", config.OptRefreshForce)
	skipFantasyFlag   = boolFlag("skip-fantasy", config.OptRefreshSkipFantasy)
	skipStandingsFlag = boolFlag("skip-standings", config.OptRefreshSkipStandings)
)
