/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build runs the configured platforms: it loads the token sources,
// transforms a copy of the tokens per platform and writes every output file.
package build

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/tokenwind/config"
	"bennypowers.dev/tokenwind/convert"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/token"
	"bennypowers.dev/tokenwind/transform"
)

// ErrNoSources indicates the configured sources matched no files.
var ErrNoSources = errors.New("no token files matched")

// Options configures a build.
type Options struct {
	// Config is the build configuration. Defaults to config.Default() if nil.
	Config *config.Config

	// Root is the project directory sources and build paths are relative to.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Platforms limits the build to the named platforms. Empty builds all.
	Platforms []string

	// Strict turns unresolved references into an error.
	Strict bool

	// Fetcher reads http(s) sources.
	Fetcher load.Fetcher
}

// Result lists what a build wrote.
type Result struct {
	// Written holds the absolute paths of written files, sorted.
	Written []string
	// Tokens is the number of tokens loaded.
	Tokens int
}

// output is one file to generate.
type output struct {
	platform string
	path     string
	spec     config.FileSpec
	tokens   []*token.Token
}

// Run builds the selected platforms. Output files are formatted and written
// concurrently; a failing file does not stop the others.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	cfg := opts.Config

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	platforms, err := SelectPlatforms(cfg, opts.Platforms)
	if err != nil {
		return nil, err
	}

	tokens, err := LoadTokens(ctx, opts)
	if err != nil {
		return nil, err
	}

	var outputs []output
	for _, name := range platforms {
		p := cfg.Platforms[name]
		transformed, err := Transform(tokens, p, cfg)
		if err != nil {
			return nil, fmt.Errorf("platform %s: %w", name, err)
		}
		for _, spec := range p.Files {
			outputs = append(outputs, output{
				platform: name,
				path:     filepath.Join(opts.Root, p.BuildPath, spec.Destination),
				spec:     spec,
				tokens:   transformed,
			})
		}
	}

	result := &Result{Tokens: len(tokens)}
	var (
		mu       sync.Mutex
		failures atomic.Int32
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, out := range outputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := write(opts.FS, cfg, out); err != nil {
				logger.Error("%s (platform %s): %v", out.path, out.platform, err)
				failures.Add(1)
				return nil
			}
			logger.Info("Wrote %s", out.path)
			mu.Lock()
			result.Written = append(result.Written, out.path)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(result.Written)

	if n := failures.Load(); n > 0 {
		return result, fmt.Errorf("failed to generate %d output(s)", n)
	}
	return result, nil
}

// LoadTokens expands the configured sources and loads them.
func LoadTokens(ctx context.Context, opts Options) ([]*token.Token, error) {
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	sources, err := opts.Config.ExpandSources(opts.FS, opts.Root)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoSources, opts.Config.Source)
	}
	logger.Debug("loading %d source(s)", len(sources))

	return load.Tokens(ctx, sources, load.Options{
		FS:      opts.FS,
		Parser:  opts.Config.ParserOptions(),
		Strict:  opts.Strict,
		Fetcher: opts.Fetcher,
	})
}

// Transform returns copies of tokens with the platform's transforms applied.
func Transform(tokens []*token.Token, p *config.Platform, cfg *config.Config) ([]*token.Token, error) {
	transforms, err := transform.Resolve(p.TransformGroup, p.Transforms)
	if err != nil {
		return nil, err
	}
	cloned := make([]*token.Token, len(tokens))
	for i, tok := range tokens {
		cloned[i] = tok.Clone()
	}
	transform.Apply(cloned, transforms, cfg.TransformOptions())
	return cloned, nil
}

// SelectPlatforms returns the requested platform names, or all configured
// platforms when none are requested.
func SelectPlatforms(cfg *config.Config, requested []string) ([]string, error) {
	all := cfg.PlatformNames()
	if len(requested) == 0 {
		return all, nil
	}
	for _, name := range requested {
		if !slices.Contains(all, name) {
			return nil, fmt.Errorf("unknown platform %q (configured: %v)", name, all)
		}
	}
	return requested, nil
}

func write(filesystem fs.FileSystem, cfg *config.Config, out output) error {
	format, err := convert.ParseFormat(out.spec.Format)
	if err != nil {
		return err
	}
	data, err := convert.FormatTokens(out.tokens, format, cfg.FormatterOptions(out.spec))
	if err != nil {
		return fmt.Errorf("formatting %s: %w", format, err)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	if err := filesystem.MkdirAll(filepath.Dir(out.path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	written, err := fs.WriteIfChanged(filesystem, out.path, data, 0644)
	if err != nil {
		return fmt.Errorf("writing: %w", err)
	}
	if !written {
		logger.Debug("%s unchanged", out.path)
	}
	return nil
}

func withDefaults(opts Options) (Options, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.FS == nil {
		opts.FS = fs.NewOSFileSystem()
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if !filepath.IsAbs(opts.Root) {
		abs, err := filepath.Abs(opts.Root)
		if err != nil {
			return opts, fmt.Errorf("failed to resolve root path: %w", err)
		}
		opts.Root = abs
	}
	return opts, nil
}
