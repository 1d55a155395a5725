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

	"github.com/spf13/cobra"
	"github.com/walteh/domainrw/cmd/domainrw/opts"
	"github.com/walteh/domainrw/pkg/log"
	"github.com/walteh/domainrw/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates the run command. The root command shares its RunE.
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replace the placeholder domain in the artifact",
		Long: `Run rewrites the configured artifact in place.
It will:
1. Resolve the effective domain (first non-empty source, else the default)
2. Read the artifact
3. Replace every literal occurrence of the placeholder
4. Write the artifact back and report the replacement count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Rewrite(cmd.Context(), o, dryRun)
		},
	}

	AddRunFlags(cmd, &dryRun)

	return cmd
}

// AddRunFlags adds the flags shared by the root and run commands
func AddRunFlags(cmd *cobra.Command, dryRun *bool) {
	cmd.Flags().BoolVarP(dryRun, "dry-run", "n", false, "show the changes without writing the artifact")
}

// 🏃 Rewrite runs one rewrite with full console reporting
func Rewrite(ctx context.Context, o *opts.RootOpts, dryRun bool) error {
	o.Logger.Header("rewriting artifact domain")

	res, err := rewriteOnce(ctx, o, dryRun)
	if err != nil {
		return err
	}

	if dryRun {
		if res.Diff != "" {
			o.Logger.LogNewline()
			o.Logger.Raw(res.Diff)
			o.Logger.LogNewline()
		}
		o.Logger.Successf("dry run: %d occurrence(s) would be replaced in %s", res.Count, res.Path)
		o.Logger.Info("dry run: artifact left unchanged")
	} else {
		o.Logger.Successf("replaced %d occurrence(s) in %s", res.Count, res.Path)
		if res.Count == 0 {
			o.Logger.Warningf("placeholder %s not found, artifact already rewritten or never templated", o.Config.Placeholder)
		}
	}

	o.Logger.Summary()
	return nil
}

// rewriteOnce resolves the domain and rewrites the artifact, logging the outcome
func rewriteOnce(ctx context.Context, o *opts.RootOpts, dryRun bool) (*rewrite.Result, error) {
	domain := o.Config.EffectiveDomain(o.Env)
	o.Logger.LogDomain(domain.Value, domain.Source)

	path := o.Config.ArtifactPath()
	res, err := rewrite.New().Run(ctx, rewrite.Request{
		Path:         path,
		Name:         o.Config.ArtifactName(),
		Placeholder:  o.Config.Placeholder,
		Domain:       domain.Value,
		DryRun:       dryRun,
		ArtifactGlob: o.Config.ArtifactGlob,
	})
	if err != nil {
		o.Logger.LogRewrite(ctx, log.RewriteOperation{Path: path, Domain: domain.Value, Err: err})
		return nil, errors.Errorf("rewriting artifact: %w", err)
	}

	o.Logger.LogRewrite(ctx, log.RewriteOperation{
		Path:         path,
		Domain:       domain.Value,
		Replacements: res.Count,
		IsModified:   res.Modified,
		IsDryRun:     dryRun,
	})

	return res, nil
}
