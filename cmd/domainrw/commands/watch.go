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

package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/walteh/domainrw/cmd/domainrw/opts"
	"github.com/walteh/domainrw/pkg/watch"
	"gitlab.com/tozd/go/errors"
)

// NewWatchCmd creates the watch command
func NewWatchCmd(o *opts.RootOpts) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the artifact rewritten while a build regenerates it",
		Long: `Watch rewrites the artifact once, then again every time it is written
or recreated, until interrupted. Dotenv files are re-read on every run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o.Logger.Header("watching " + o.Config.ArtifactPath())
			o.Logger.Infof("rewriting on every change, debounce %s, interrupt to stop", debounce)

			w, err := watch.New(watch.Options{
				Path:     o.Config.ArtifactPath(),
				Debounce: debounce,
				Action: func(ctx context.Context) error {
					env, err := o.Config.Environment(ctx)
					if err != nil {
						o.Logger.Errorf("reading environment: %v", err)
						return err
					}
					o.Env = env
					if _, err := rewriteOnce(ctx, o, false); err != nil {
						o.Logger.Error(err.Error())
						return err
					}
					return nil
				},
			})
			if err != nil {
				return errors.Errorf("creating watcher: %w", err)
			}

			if err := w.Run(ctx); err != nil {
				return errors.Errorf("watching artifact: %w", err)
			}

			o.Logger.Summary()
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-running")

	return cmd
}
