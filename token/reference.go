/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// curlyBracePattern matches {token.path} references.
var curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ParseCurlyBraceRef extracts the token path from a curly brace reference.
// Returns the path and true if valid, empty string and false otherwise.
func ParseCurlyBraceRef(value string) (string, bool) {
	matches := curlyBracePattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return NormalizeRef(matches[1]), true
}

// IsCurlyBraceRef returns true if the value contains a curly brace reference.
func IsCurlyBraceRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// IsWholeRef returns true if the entire value is a single reference.
func IsWholeRef(value string) bool {
	loc := curlyBracePattern.FindStringIndex(value)
	return loc != nil && loc[0] == 0 && loc[1] == len(value)
}

// ExtractAllRefs extracts all curly brace references from a string.
func ExtractAllRefs(value string) []string {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, NormalizeRef(m[1]))
		}
	}
	return refs
}

// ReplaceRefs replaces every reference in value with the result of fn.
// fn receives the normalized reference path.
func ReplaceRefs(value string, fn func(ref string) string) string {
	return curlyBracePattern.ReplaceAllStringFunc(value, func(match string) string {
		return fn(NormalizeRef(match[1 : len(match)-1]))
	})
}

// NormalizeRef trims whitespace and the legacy ".value" suffix from a reference path.
// "{color.primary.value}" and "{color.primary}" name the same token.
func NormalizeRef(ref string) string {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimSuffix(ref, ".$value")
	return strings.TrimSuffix(ref, ".value")
}
