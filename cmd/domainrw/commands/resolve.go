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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/domainrw/cmd/domainrw/opts"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd(o *opts.RootOpts) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the effective domain without touching the artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := o.Config.EffectiveDomain(o.Env)
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), domain.Value)
				return nil
			}
			o.Logger.LogDomain(domain.Value, domain.Source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print only the domain")

	return cmd
}
