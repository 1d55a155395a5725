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

package rewrite

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 📍 Artifact operations that can fail
const (
	OpRead   = "read"
	OpDecode = "decode"
	OpWrite  = "write"
)

// ❌ ArtifactError is the one failure kind of a rewrite: the artifact could
// not be read, was not text, or could not be written back.
type ArtifactError struct {
	Op   string
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s artifact %s: %v", e.Op, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// IsArtifactError reports whether err, or anything it wraps, is an ArtifactError
func IsArtifactError(err error) bool {
	var ae *ArtifactError
	return errors.As(err, &ae)
}

// errNotText is wrapped by decode failures
var errNotText = errors.Base("content is not valid UTF-8 text")

// ErrArtifactFiltered is returned when the artifact path does not match the
// configured artifact glob. It is a configuration error, not an ArtifactError.
var ErrArtifactFiltered = errors.Base("artifact does not match artifact_glob")
