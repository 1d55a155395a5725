// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/domainrw/cmd/domainrw/commands"
	"github.com/walteh/domainrw/cmd/domainrw/opts"
	"github.com/walteh/domainrw/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags
type rootFlags struct {
	configFile string
	root       string
	envFiles   []string
	debug      bool
}

// newRootCmd builds the command tree around o
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	var flags rootFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "domainrw",
		Short: "Replace a placeholder domain in a build artifact",
		Long: `domainrw replaces every literal occurrence of a placeholder domain in one
static artifact with the effective domain, taken from the first non-empty of
SITE_URL, FRONTEND_URL and APP_URL (process environment, then .env), or a
built-in default.

Run without arguments from the project root.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.debug)
			return newRootOpts(cmd, o, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Rewrite(cmd.Context(), o, dryRun)
		},
	}

	addRootFlags(cmd, &flags)
	commands.AddRunFlags(cmd, &dryRun)

	cmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewResolveCmd(o),
		commands.NewWatchCmd(o),
		commands.NewVersionCmd(),
	)

	return cmd
}

// newRootOpts loads the config and environment once flags are parsed
func newRootOpts(cmd *cobra.Command, o *opts.RootOpts, flags rootFlags) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("env-file") {
		cfg.EnvFiles = flags.envFiles
	}

	env, err := cfg.Environment(ctx)
	if err != nil {
		return errors.Errorf("loading environment: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Str("location", cfg.Location()).Msg("configuration loaded")

	o.Config = cfg
	o.Env = env
	return nil
}

// loadConfig falls back to the defaults only when --config was not given
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	ctx := cmd.Context()
	if !cmd.Flags().Changed("config") {
		return config.LoadOrDefault(ctx, flags.configFile, flags.root)
	}

	path := flags.configFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(flags.root, path)
	}
	return config.Load(ctx, path, flags.root)
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultConfigFile, "config file path, relative to the project root")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "r", ".", "project root")
	cmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", []string{config.DefaultEnvFile}, "dotenv files, relative to the project root")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}
