/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads, merges and resolves the token sources of a build.
package load

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/parser"
	"bennypowers.dev/tokenwind/resolver"
	"bennypowers.dev/tokenwind/token"
)

// ErrNoFetcher indicates a remote source was configured without a Fetcher.
var ErrNoFetcher = errors.New("remote sources require a fetcher")

// Options configures how tokens are loaded.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Parser holds the parser options applied to every source.
	Parser parser.Options

	// Strict turns unresolved references into an error.
	Strict bool

	// Fetcher reads http(s) sources. Nil rejects remote sources.
	Fetcher Fetcher

	// FetchTimeout bounds each remote fetch.
	// Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

// Tokens loads every source, merges the tokens by path and resolves references.
//
// Sources are read concurrently but merged in the order given: a token
// defined by several sources takes the value of the last one and keeps the
// position of the first.
func Tokens(ctx context.Context, sources []string, opts Options) ([]*token.Token, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	perSource := make([][]*token.Token, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			tokens, err := readSource(gctx, filesystem, source, opts)
			if err != nil {
				return err
			}
			perSource[i] = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Merge(perSource...)
	if err := resolver.ResolveAliases(merged, opts.Strict); err != nil {
		return nil, fmt.Errorf("failed to resolve references: %w", err)
	}
	return merged, nil
}

// Merge concatenates token lists, replacing earlier tokens that share a path.
func Merge(lists ...[]*token.Token) []*token.Token {
	var merged []*token.Token
	index := make(map[string]int)
	for _, list := range lists {
		for _, tok := range list {
			key := tok.DotPath()
			if i, ok := index[key]; ok {
				prev := merged[i]
				if prev.FilePath != tok.FilePath {
					logger.Warn("token collision: %s in %s overrides %s", key, tok.FilePath, prev.FilePath)
				}
				merged[i] = tok
				continue
			}
			index[key] = len(merged)
			merged = append(merged, tok)
		}
	}
	return merged
}

func readSource(ctx context.Context, filesystem fs.FileSystem, source string, opts Options) ([]*token.Token, error) {
	p := parser.NewJSONParser()
	if !IsRemote(source) {
		return p.ParseFile(filesystem, source, opts.Parser)
	}

	if opts.Fetcher == nil {
		return nil, fmt.Errorf("%s: %w", source, ErrNoFetcher)
	}
	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := opts.Fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	tokens, err := p.Parse(content, opts.Parser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	for _, t := range tokens {
		t.FilePath = source
	}
	return tokens, nil
}
