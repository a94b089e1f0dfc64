/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat name-to-value JSON formatting for design tokens.
package flatjson

import (
	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/internal/ordered"
	"bennypowers.dev/tokenwind/token"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a JSON object keyed by token name, sorted by name.
// Override tokens replace base tokens of the same name, since the stable
// sort keeps them after base tokens.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	base, overrides := formatter.Partition(tokens, opts.BrandPrefix)

	result := ordered.New()
	for _, tok := range formatter.SortTokens(append(base, overrides...)) {
		result.Set(tok.Name, tok.Value)
	}
	return ordered.MarshalIndent(result, "  ")
}
