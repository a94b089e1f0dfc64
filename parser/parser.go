/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides design token file parsing.
package parser

import (
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

// Options configures token parsing.
type Options struct {
	// SchemaVersion overrides per-leaf dialect detection.
	SchemaVersion schema.Version

	// Sort orders sibling keys alphabetically.
	// When false (default), tokens keep the order they have in the document,
	// which is the order generated theme objects list their keys in.
	Sort bool
}

// Parser parses design token files.
type Parser interface {
	// Parse parses token data and returns tokens.
	Parse(data []byte, opts Options) ([]*token.Token, error)

	// ParseFile parses a token file and returns tokens.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error)
}
