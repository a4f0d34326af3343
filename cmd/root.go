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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/edwardanalytics/fpltable/internal/iofs"
	"github.com/edwardanalytics/fpltable/internal/iologger"
	app "github.com/edwardanalytics/fpltable/pkg"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "fpltable",
		Short:   "Compares FPL scoring with the real Premier League table",
		Long: `fpltable builds a Premier League table from Fantasy Premier League
scoring data and joins it with the actual league standings.

For every season it keeps CSV artifacts in the data directory:
  - fantasy team summaries
  - fantasy player summaries
  - actual standings
  - the joined table with the position difference

Configuration is kept at ~/.config/fpltable/config.yaml, team name
reconciliation at ~/.config/fpltable/team_names.yaml.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "fpltable version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for fpltable")

	rootCmd.AddCommand(
		getRefreshCmd(),
		getBackfillCmd(),
		getJoinCmd(),
		getShowCmd(),
		getExportCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	// Optional .env in the working directory feeds the FPLTABLE_ variables.
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Cannot read .env file", "error", err)
	}

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureMappingFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.TouchDir(cfg.DataPath()); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"data_dir", cfg.DataPath(),
	)
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds the allowed environment variables. They match the
// fields of config.ToOptions(), the persistent part of config.yaml.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("FPLTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		v.BindEnv(key, envName(key))
	}
}

// envKeys are config keys that can be set by FPLTABLE_ variables.
var envKeys = []string{
	"data.dir",

	"source.fantasy_base_url",
	"source.standings_url",
	"source.encoding",
	"source.timeout",
	"source.requests_per_second",
	"source.user_agent",

	"export.driver",
	"export.sqlite_path",
	"export.host",
	"export.port",
	"export.user",
	"export.password",
	"export.database",
	"export.ssl_mode",
	"export.batch_size",

	"log.level",
	"log.format",
	"log.destination",
}

// envName converts a config key to its environment variable, for
// example "export.ssl_mode" becomes FPLTABLE_EXPORT_SSL_MODE.
func envName(key string) string {
	return "FPLTABLE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
