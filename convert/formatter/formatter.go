/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"sort"
	"strings"

	"bennypowers.dev/tokenwind/token"
)

// DefaultSelector is the CSS selector used when none is configured.
const DefaultSelector = ":root"

// DefaultDarkModeMarker is the path segment marking dark-mode tokens.
const DefaultDarkModeMarker = "dark"

// GeneratedNotice is the leading comment of generated JavaScript modules.
const GeneratedNotice = "Auto-generated from design tokens"

// DefaultSemanticNames are the colour groups emitted into a Tailwind @theme block.
var DefaultSemanticNames = []string{"primary", "success", "danger", "warning", "info", "error"}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts tokens to the target format.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Selector wraps CSS declarations. Empty means DefaultSelector.
	Selector string

	// BrandPrefix is the leading path segment marking override tokens.
	// Empty disables override handling.
	BrandPrefix string

	// DarkModeMarker excludes tokens with this path segment from theme objects.
	// Empty means DefaultDarkModeMarker.
	DarkModeMarker string

	// Module is the JavaScript module system, "esm" or "cjs".
	Module string

	// SemanticNames overrides DefaultSemanticNames.
	SemanticNames []string
}

// SelectorOrDefault returns the configured selector or DefaultSelector.
func (o Options) SelectorOrDefault() string {
	if o.Selector == "" {
		return DefaultSelector
	}
	return o.Selector
}

// DarkModeMarkerOrDefault returns the configured marker or DefaultDarkModeMarker.
func (o Options) DarkModeMarkerOrDefault() string {
	if o.DarkModeMarker == "" {
		return DefaultDarkModeMarker
	}
	return o.DarkModeMarker
}

// SemanticNamesOrDefault returns the configured semantic names or DefaultSemanticNames.
func (o Options) SemanticNamesOrDefault() []string {
	if len(o.SemanticNames) == 0 {
		return DefaultSemanticNames
	}
	return o.SemanticNames
}

// CommentStyle specifies the comment syntax for a file header.
type CommentStyle int

const (
	// LineComments uses // on every line.
	LineComments CommentStyle = iota
	// CStyleComments uses /* */ block comments.
	CStyleComments
)

// FormatHeader wraps header text in comments. Returns "" for empty text.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}

	lines := strings.Split(header, "\n")
	var b strings.Builder
	switch style {
	case CStyleComments:
		b.WriteString("/*\n")
		for _, line := range lines {
			b.WriteString(strings.TrimRight(" * "+line, " "))
			b.WriteString("\n")
		}
		b.WriteString(" */\n")
	default:
		for _, line := range lines {
			b.WriteString(strings.TrimRight("// "+line, " "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SortTokens returns a copy of tokens sorted by name.
// Tokens with equal names keep their relative order.
func SortTokens(tokens []*token.Token) []*token.Token {
	sorted := make([]*token.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Partition splits tokens into base tokens and override tokens, the latter
// being those whose first path segment is brandPrefix. Input order is kept.
func Partition(tokens []*token.Token, brandPrefix string) (base, overrides []*token.Token) {
	for _, tok := range tokens {
		if tok == nil {
			continue
		}
		if tok.HasPrefix(brandPrefix) {
			overrides = append(overrides, tok)
		} else {
			base = append(base, tok)
		}
	}
	return base, overrides
}

// WithoutMarker returns tokens whose path does not contain marker.
func WithoutMarker(tokens []*token.Token, marker string) []*token.Token {
	result := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok == nil || tok.HasSegment(marker) {
			continue
		}
		result = append(result, tok)
	}
	return result
}
