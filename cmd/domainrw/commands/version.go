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
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

const shortRevisionLen = 12

// 🏷️ BuildVersion describes the running domainrw binary
type BuildVersion struct {
	Module   string `json:"module"`
	Version  string `json:"version"`
	Commit   string `json:"commit,omitempty"`
	Date     string `json:"date,omitempty"`
	Dirty    bool   `json:"dirty"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

// CurrentVersion reads the build metadata embedded in the binary
func CurrentVersion() BuildVersion {
	bi, ok := debug.ReadBuildInfo()
	return versionFrom(bi, ok)
}

// versionFrom maps build info onto a BuildVersion. Binaries built outside a
// module, or with `go run`, report "dev".
func versionFrom(bi *debug.BuildInfo, ok bool) BuildVersion {
	v := BuildVersion{
		Module:   "domainrw",
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if !ok || bi == nil {
		return v
	}

	if bi.Main.Path != "" {
		v.Module = bi.Main.Path
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			v.Commit = s.Value
		case "vcs.time":
			v.Date = s.Value
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}

	return v
}

// ShortCommit is the abbreviated revision, with a "+dirty" suffix for modified trees
func (v BuildVersion) ShortCommit() string {
	if v.Commit == "" {
		return "unknown"
	}
	c := v.Commit
	if len(c) > shortRevisionLen {
		c = c[:shortRevisionLen]
	}
	if v.Dirty {
		c += "+dirty"
	}
	return c
}

// 📝 String renders the version block printed by `domainrw version`
func (v BuildVersion) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚀 domainrw %s\n", v.Version)
	fmt.Fprintf(&b, "  module    %s\n", v.Module)
	fmt.Fprintf(&b, "  commit    %s\n", v.ShortCommit())
	if v.Date != "" {
		fmt.Fprintf(&b, "  built     %s\n", v.Date)
	}
	fmt.Fprintf(&b, "  go        %s %s\n", v.Go, v.Platform)
	return b.String()
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version needs no config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			v := CurrentVersion()
			if !asJSON {
				fmt.Fprint(cmd.OutOrStdout(), v.String())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(v); err != nil {
				return errors.Errorf("encoding version: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
