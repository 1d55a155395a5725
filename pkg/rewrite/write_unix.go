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
	"path/filepath"

	"github.com/google/renameio/v2"
)

// replaceFile atomically replaces the artifact with data, keeping its mode.
// A symlinked artifact is resolved first so the link itself survives and the
// target is rewritten. Hard links to the artifact are broken by the rename.
func replaceFile(path string, data []byte) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}
	return renameio.WriteFile(target, data, 0o644, renameio.WithExistingPermissions())
}
