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

// Package watch re-runs an action whenever a single file is written or
// recreated, e.g. by a bundler regenerating a build artifact.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounce coalesces bursts of events from a single build step
const DefaultDebounce = 100 * time.Millisecond

// Action is run once at start and after every change to the watched file
type Action func(ctx context.Context) error

// 🔧 Options configures a Watcher
type Options struct {
	Path     string        // File to watch
	Debounce time.Duration // Quiet period before the action runs
	Action   Action
}

// 👀 Watcher runs an Action whenever its file changes
type Watcher struct {
	path     string
	debounce time.Duration
	action   Action
	ready    chan struct{}
}

// 🏭 New creates a new Watcher
func New(opts Options) (*Watcher, error) {
	if opts.Path == "" {
		return nil, errors.Errorf("path is required")
	}
	if opts.Action == nil {
		return nil, errors.Errorf("action is required")
	}

	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, errors.Errorf("resolving watch path: %w", err)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		action:   opts.Action,
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once the initial action ran and the watch is in place
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// 🏃 Run blocks until ctx is done. Action failures are logged and do not stop
// the watch; only setup failures are returned.
func (w *Watcher) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("watch", w.path).Logger()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	// the directory is watched so that delete + recreate is still seen
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return errors.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	w.runAction(ctx, &logger)
	close(w.ready)

	triggers := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case event, ok := <-fsw.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				logger.Debug().Str("op", event.Op.String()).Msg("artifact changed")
				select {
				case triggers <- struct{}{}:
				default:
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return nil
				}
				logger.Error().Err(err).Msg("watcher error")
			}
		}
	})

	g.Go(func() error {
		timer := time.NewTimer(w.debounce)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-triggers:
				timer.Reset(w.debounce)
			case <-timer.C:
				w.runAction(gctx, &logger)
			}
		}
	})

	err = g.Wait()
	logger.Debug().Msg("watcher stopped")
	return err
}

func (w *Watcher) runAction(ctx context.Context, logger *zerolog.Logger) {
	if ctx.Err() != nil {
		return
	}
	if err := w.action(ctx); err != nil {
		logger.Error().Err(err).Msg("watch action failed")
	}
}
