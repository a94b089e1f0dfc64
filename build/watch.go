/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/specifier"
)

// DefaultDebounce is how long Watch waits after the last change before rebuilding.
const DefaultDebounce = 200 * time.Millisecond

// sourceExtensions are the file extensions whose changes trigger a rebuild.
var sourceExtensions = []string{".json", ".jsonc", ".yaml", ".yml"}

// Watch builds once, then rebuilds whenever a token source under the watched
// directories changes, until ctx is done. Every build result is passed to
// onBuild. Watching works on the OS filesystem only.
func Watch(ctx context.Context, opts Options, debounce time.Duration, onBuild func(*Result, error)) error {
	opts, err := withDefaults(opts)
	if err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	sources := watchDirs(opts)
	outputs := outputDirs(opts, sources)
	for _, dir := range sources {
		addTree(watcher, dir, outputs)
	}

	onBuild(Run(ctx, opts))

	ticker := time.NewTicker(debounce / 4)
	defer ticker.Stop()
	var lastChange time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					addTree(watcher, event.Name, outputs)
					continue
				}
			}
			if !isSourceEvent(event, outputs) {
				continue
			}
			logger.Debug("%s: %s", event.Op, event.Name)
			lastChange = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case <-ticker.C:
			if lastChange.IsZero() || time.Since(lastChange) < debounce {
				continue
			}
			lastChange = time.Time{}
			logger.Info("Rebuilding")
			onBuild(Run(ctx, opts))
		}
	}
}

// watchDirs returns the directories holding local sources: the non-glob
// prefix of each pattern, or the parent of a literal path.
func watchDirs(opts Options) []string {
	var dirs []string
	for _, pattern := range opts.Config.Source {
		if load.IsRemote(pattern) || specifier.IsPackage(pattern) {
			continue
		}
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(opts.Root, pattern)
		}
		dir := filepath.Dir(pattern)
		for strings.ContainsAny(dir, "*?[{") {
			dir = filepath.Dir(dir)
		}
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// outputDirs returns the build paths whose events are ignored. A build path
// that is, or contains, a source directory is not ignored: an empty
// buildPath writes into the project root, which holds the sources.
func outputDirs(opts Options, sources []string) []string {
	var dirs []string
	for _, p := range opts.Config.Platforms {
		if p == nil {
			continue
		}
		dir := filepath.Join(opts.Root, p.BuildPath)
		if slices.ContainsFunc(sources, func(src string) bool { return within(src, dir) }) {
			logger.Debug("build path %s holds token sources, watching it", dir)
			continue
		}
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// addTree watches dir and its subdirectories, skipping output directories.
func addTree(watcher *fsnotify.Watcher, dir string, skip []string) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if slices.Contains(skip, path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			logger.Warn("watch %s: %v", path, err)
		}
		return nil
	})
	if err != nil {
		logger.Warn("watch %s: %v", dir, err)
	}
}

func isSourceEvent(event fsnotify.Event, outputs []string) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if !slices.Contains(sourceExtensions, strings.ToLower(filepath.Ext(event.Name))) {
		return false
	}
	for _, dir := range outputs {
		if strings.HasPrefix(event.Name, dir+string(filepath.Separator)) {
			return false
		}
	}
	return true
}
