/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports token problems the build itself tolerates:
// dialect mix-ups in source files, and tokens the theme formatters drop
// or silently replace.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/convert/formatter/theme"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

// ValidationError represents one validation finding.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dot path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// ValidateConsistency checks that file content sticks to one dialect.
// Returns errors for:
// - DTCG keys ($value, $type) in a legacy file
// - legacy leaves (value without $value) in a DTCG file
// - colour leaves whose value is neither a CSS colour nor a reference
func ValidateConsistency(content []byte, version schema.Version, filePath string) []ValidationError {
	var data map[string]any
	if err := yaml.Unmarshal(jsonc.ToJSON(content), &data); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}
	if version == schema.Unknown {
		detected, err := schema.DetectVersion(content, nil)
		if err != nil {
			return []ValidationError{{FilePath: filePath, Message: err.Error()}}
		}
		version = detected
	}
	return walk(data, version, filePath, nil, false)
}

func walk(data map[string]any, version schema.Version, filePath string, path []string, inColor bool) []ValidationError {
	var errs []ValidationError

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		currentPath := append(path[:len(path):len(path)], key)
		pathStr := strings.Join(currentPath, ".")

		if version == schema.Legacy && (key == "$value" || key == "$type") {
			errs = append(errs, ValidationError{
				FilePath:   filePath,
				Path:       pathStr,
				Message:    key + " is not valid in a legacy token file",
				Suggestion: "use " + strings.TrimPrefix(key, "$") + " or convert the whole file to DTCG",
			})
			continue
		}

		child, ok := data[key].(map[string]any)
		if !ok {
			continue
		}
		color := inColor || key == "color" || child["$type"] == "color" || child["type"] == "color"

		valueKey := version.ValueKey()
		if version == schema.DTCG {
			if _, legacy := child["value"]; legacy {
				if _, dtcg := child["$value"]; !dtcg {
					errs = append(errs, ValidationError{
						FilePath:   filePath,
						Path:       pathStr,
						Message:    "value is not valid in a DTCG token file",
						Suggestion: "use $value",
					})
					continue
				}
			}
		}

		if raw, isLeaf := child[valueKey]; isLeaf {
			if s, isString := raw.(string); color && isString && !token.IsCurlyBraceRef(s) {
				if _, err := csscolorparser.Parse(s); err != nil {
					errs = append(errs, ValidationError{
						FilePath:   filePath,
						Path:       pathStr,
						Message:    fmt.Sprintf("%q is not a CSS colour", s),
						Suggestion: "use a hex, rgb() or hsl() value, or a {reference}",
					})
				}
			}
			continue
		}

		errs = append(errs, walk(child, version, filePath, currentPath, color)...)
	}
	return errs
}

// CheckCoverage reports, for transformed tokens:
// - tokens the nested theme formatter drops
// - base tokens sharing a name, where the later one silently wins
// - override tokens with no base token of the same name
func CheckCoverage(tokens []*token.Token, opts formatter.Options) []ValidationError {
	var errs []ValidationError

	for _, tok := range theme.Dropped(tokens, opts) {
		errs = append(errs, ValidationError{
			FilePath:   tok.FilePath,
			Path:       tok.DotPath(),
			Message:    "not placed in the nested theme",
			Suggestion: "start the path with a known category such as color, spacing or fontSize",
		})
	}

	base, overrides := formatter.Partition(tokens, opts.BrandPrefix)
	byName := make(map[string]*token.Token, len(base))
	for _, tok := range base {
		if prev, ok := byName[tok.Name]; ok {
			errs = append(errs, ValidationError{
				FilePath:   tok.FilePath,
				Path:       tok.DotPath(),
				Message:    fmt.Sprintf("name %q is also produced by %s", tok.Name, prev.DotPath()),
				Suggestion: "rename one of the tokens; the later one wins",
			})
		}
		byName[tok.Name] = tok
	}

	for _, tok := range overrides {
		if rest := token.TrimPrefix(tok.Path, opts.BrandPrefix); len(rest) == 0 ||
			(len(rest) == 1 && rest[0] == token.DefaultSegment) {
			errs = append(errs, ValidationError{
				FilePath:   tok.FilePath,
				Path:       tok.DotPath(),
				Message:    "override has no path below the brand prefix",
				Suggestion: "nest it under a category, e.g. " + opts.BrandPrefix + ".color.DEFAULT",
			})
		}
		if _, ok := byName[tok.Name]; !ok {
			errs = append(errs, ValidationError{
				FilePath:   tok.FilePath,
				Path:       tok.DotPath(),
				Message:    fmt.Sprintf("override %q has no base token", tok.Name),
				Suggestion: "use a name transform that strips the brand prefix, or add the base token",
			})
		}
	}

	return errs
}
