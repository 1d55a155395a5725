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
	"bytes"
	"encoding/json"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFrom(t *testing.T) {
	tests := []struct {
		name  string
		bi    *debug.BuildInfo
		ok    bool
		check func(t *testing.T, v BuildVersion)
	}{
		{
			name: "no_build_info",
			ok:   false,
			check: func(t *testing.T, v BuildVersion) {
				assert.Equal(t, "dev", v.Version)
				assert.Equal(t, "domainrw", v.Module)
				assert.Equal(t, "unknown", v.ShortCommit())
			},
		},
		{
			name: "devel_build",
			ok:   true,
			bi:   &debug.BuildInfo{Main: debug.Module{Path: "github.com/walteh/domainrw", Version: "(devel)"}},
			check: func(t *testing.T, v BuildVersion) {
				assert.Equal(t, "dev", v.Version)
				assert.Equal(t, "github.com/walteh/domainrw", v.Module)
			},
		},
		{
			name: "tagged_dirty_build",
			ok:   true,
			bi: &debug.BuildInfo{
				Main: debug.Module{Path: "github.com/walteh/domainrw", Version: "v1.2.3"},
				Settings: []debug.BuildSetting{
					{Key: "vcs", Value: "git"},
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			check: func(t *testing.T, v BuildVersion) {
				assert.Equal(t, "v1.2.3", v.Version)
				assert.Equal(t, "2025-01-02T03:04:05Z", v.Date)
				assert.True(t, v.Dirty)
				assert.Equal(t, "0123456789ab+dirty", v.ShortCommit())
				assert.Contains(t, v.String(), "🚀 domainrw v1.2.3")
				assert.Contains(t, v.String(), "built     2025-01-02T03:04:05Z")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, versionFrom(tt.bi, tt.ok))
		})
	}
}

func TestVersionCmdJSON(t *testing.T) {
	cmd := NewVersionCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--json"})
	require.NoError(t, cmd.Execute())

	var got BuildVersion
	require.NoError(t, json.Unmarshal(out.Bytes(), &got), "output: %s", out.String())
	assert.NotEmpty(t, got.Version)
	assert.NotEmpty(t, got.Go)
}
