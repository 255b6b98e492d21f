// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after a change before packages are checked again.
const defaultDebounce = 300 * time.Millisecond

// watcher re-runs a check when Go sources below a directory change.
type watcher struct {
	root     string
	debounce time.Duration
	logger   *slog.Logger
}

// watch blocks until ctx is done, calling onChange after changes settle.
func (w watcher) watch(ctx context.Context, onChange func(changed []string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.addRecursive(fw, w.root); err != nil {
		return err
	}

	debounce := w.debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	timer := time.NewTimer(debounce)
	timer.Stop()

	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if isDir(event.Name) {
					if err := w.addRecursive(fw, event.Name); err != nil {
						w.logger.WarnContext(ctx, "Can't watch directory", slog.String("dir", event.Name), slog.Any("error", err))
					}

					continue
				}
			}

			if !relevant(event) {
				continue
			}

			pending[event.Name] = struct{}{}
			timer.Reset(debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}

			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			clear(pending)

			onChange(changed)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			return err
		}
	}
}

// addRecursive watches dir and all its subdirectories not skipped by [skipDir].
func (w watcher) addRecursive(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != w.root && skipDir(d.Name()) {
			return filepath.SkipDir
		}

		w.logger.Debug("Watching", slog.String("dir", path))

		return fw.Add(path)
	})
}

// skipDir reports whether a directory is excluded from watching, like the go tool does for ./... patterns.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "vendor" || name == "testdata"
}

// relevant reports whether an event changes Go sources or module files.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	switch base := filepath.Base(event.Name); {
	case strings.HasPrefix(base, "."):
		return base == ConfigName

	case base == "go.mod", base == "go.sum", base == "go.work":
		return true

	default:
		return strings.HasSuffix(base, ".go")
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
