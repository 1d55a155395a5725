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

//go:build !windows

package rewrite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriter_PreservesMode(t *testing.T) {
	path := writeArtifact(t, "https://your-domain.com")
	require.NoError(t, os.Chmod(path, 0600))

	_, err := New().Run(context.Background(), Request{Path: path, Placeholder: placeholder, Domain: "https://acme.io"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRewriter_FollowsSymlink(t *testing.T) {
	target := writeArtifact(t, "<loc>https://your-domain.com/</loc>")
	link := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.Symlink(target, link))

	result, err := New().Run(context.Background(), Request{Path: link, Placeholder: placeholder, Domain: "https://acme.io"})
	require.NoError(t, err)
	assert.True(t, result.Written)

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must survive the rewrite")
	assert.Equal(t, "<loc>https://acme.io/</loc>", readArtifact(t, target))
	assert.Equal(t, "<loc>https://acme.io/</loc>", readArtifact(t, link))
}
