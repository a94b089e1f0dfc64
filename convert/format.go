/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert dispatches token lists to output formatters by format name.
package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/convert/formatter/css"
	"bennypowers.dev/tokenwind/convert/formatter/flatjson"
	"bennypowers.dev/tokenwind/convert/formatter/tailwind"
	"bennypowers.dev/tokenwind/convert/formatter/theme"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

// Format represents an output format for token serialization.
type Format string

const (
	// FormatCSSVariables outputs CSS custom properties in a selector block.
	FormatCSSVariables Format = "css/variables"

	// FormatCSSTailwindTheme outputs a Tailwind @theme block of semantic colours.
	FormatCSSTailwindTheme Format = "css/tailwind-theme"

	// FormatTailwindSimple outputs flat designTokens and theme JS exports.
	FormatTailwindSimple Format = "javascript/tailwind-simple"

	// FormatTailwindNested outputs a nested Tailwind theme JS export.
	FormatTailwindNested Format = "javascript/tailwind-nested"

	// FormatFlatJSON outputs flat name-to-value JSON.
	FormatFlatJSON Format = "json/flat"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSSVariables),
		string(FormatCSSTailwindTheme),
		string(FormatTailwindSimple),
		string(FormatTailwindNested),
		string(FormatFlatJSON),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css/variables", "css":
		return FormatCSSVariables, nil
	case "css/tailwind-theme", "tailwind-theme":
		return FormatCSSTailwindTheme, nil
	case "javascript/tailwind-simple", "tailwind-simple", "tailwind":
		return FormatTailwindSimple, nil
	case "javascript/tailwind-nested", "tailwind-nested", "theme":
		return FormatTailwindNested, nil
	case "json/flat", "json", "flat":
		return FormatFlatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", schema.ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// New returns the formatter for format.
func New(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatCSSVariables:
		return css.New(), nil
	case FormatCSSTailwindTheme:
		return css.NewTheme(), nil
	case FormatTailwindSimple:
		return tailwind.New(), nil
	case FormatTailwindNested:
		return theme.New(), nil
	case FormatFlatJSON:
		return flatjson.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownFormat, format)
	}
}

// FormatTokens converts tokens to the specified output format.
func FormatTokens(tokens []*token.Token, format Format, opts formatter.Options) ([]byte, error) {
	f, err := New(format)
	if err != nil {
		return nil, err
	}
	return f.Format(tokens, opts)
}
