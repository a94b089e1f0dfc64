/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"slices"
	"sort"
	"strings"

	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/token"
)

// Formatter outputs CSS custom properties inside a selector block.
type Formatter struct{}

// New creates a new CSS variables formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders one declaration per token name. Base tokens are inserted
// before override tokens, so an override sharing a name with a base token
// replaces it. Declarations are sorted by name.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	base, overrides := formatter.Partition(tokens, opts.BrandPrefix)

	byName := make(map[string]*token.Token, len(tokens))
	for _, tok := range base {
		byName[tok.Name] = tok
	}
	for _, tok := range overrides {
		byName[tok.Name] = tok
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, declaration(byName[name]))
	}
	return block(opts.SelectorOrDefault(), lines), nil
}

// ThemeFormatter outputs a Tailwind @theme block of semantic colour tokens.
type ThemeFormatter struct{}

// NewTheme creates a new Tailwind @theme formatter.
func NewTheme() *ThemeFormatter {
	return &ThemeFormatter{}
}

// Format renders colour tokens whose group is one of the semantic names, in
// input order.
func (f *ThemeFormatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	semantic := opts.SemanticNamesOrDefault()

	var lines []string
	for _, tok := range tokens {
		if tok == nil || len(tok.Path) < 2 || tok.Path[0] != "color" {
			continue
		}
		if !slices.Contains(semantic, tok.Path[1]) {
			continue
		}
		lines = append(lines, declaration(tok))
	}
	return block("@theme", lines), nil
}

func declaration(tok *token.Token) string {
	return "  " + tok.CSSVariableName() + ": " + tok.Value + ";"
}

func block(selector string, lines []string) []byte {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return []byte(b.String())
}
