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
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/walteh/domainrw/cmd/domainrw/opts"
	"github.com/walteh/domainrw/pkg/log"
	"github.com/walteh/domainrw/pkg/rewrite"
)

// 🚦 Exit statuses
const (
	exitOK       = 0
	exitArtifact = 1 // artifact could not be read, decoded or written
	exitConfig   = 2 // bad flags, config file or environment
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	setupLogging(false)
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	o := &opts.RootOpts{Logger: log.New(stdout, stderr, zlog)}
	ctx = log.NewContext(zlog.WithContext(ctx), o.Logger)

	cmd := newRootCmd(o)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		o.Logger.Error(err.Error())
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an error to a distinguishable exit status
func exitCode(err error) int {
	if rewrite.IsArtifactError(err) {
		return exitArtifact
	}
	return exitConfig
}
