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

package config

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔑 ReadDotEnv reads the given dotenv files into one map without touching
// the process environment. Missing files are skipped; later files never
// override keys set by earlier ones.
func ReadDotEnv(ctx context.Context, paths ...string) (map[string]string, error) {
	logger := zerolog.Ctx(ctx)
	values := map[string]string{}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				logger.Debug().Str("path", path).Msg("dotenv file not found, skipping")
				continue
			}
			return nil, errors.Errorf("checking dotenv file %s: %w", path, err)
		}

		fileValues, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Errorf("reading dotenv file %s: %w", path, err)
		}

		for k, v := range fileValues {
			if _, ok := values[k]; !ok {
				values[k] = v
			}
		}
		logger.Debug().Str("path", path).Int("keys", len(fileValues)).Msg("loaded dotenv file")
	}

	return values, nil
}

// 🌍 Environment builds the lookup used for domain resolution: the process
// environment first, then the dotenv files listed in cfg.
func (cfg *Config) Environment(ctx context.Context) (LookupFunc, error) {
	dotenv, err := ReadDotEnv(ctx, cfg.EnvFilePaths()...)
	if err != nil {
		return nil, err
	}
	return Layered(EnvLookup(), MapLookup(dotenv)), nil
}
