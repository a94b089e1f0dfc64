/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types.
package token

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/tokenwind/schema"
)

// DefaultSegment is the path segment marking the base value of its parent group.
const DefaultSegment = "DEFAULT"

// Attributes holds category/type/item metadata derived from a token's path.
type Attributes struct {
	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`
	Item     string `json:"item,omitempty"`
	Subitem  string `json:"subitem,omitempty"`
	State    string `json:"state,omitempty"`
}

// Token represents a single design token.
type Token struct {
	// Name is the token's transformed flat identifier (e.g., "color-primary-600").
	Name string `json:"name"`

	// Value is the final string value after resolution and value transforms.
	Value string `json:"value"`

	// Type specifies the type of token (color, dimension, etc.).
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Attributes are filled in by the attribute/cti transform.
	Attributes Attributes `json:"attributes"`

	// Path is the path to this token (e.g., ["color", "primary", "600"]).
	Path []string `json:"path"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`

	// SchemaVersion is the dialect of the file the token came from.
	SchemaVersion schema.Version `json:"-"`

	// RawValue is the original value before resolution.
	RawValue any `json:"-"`

	// ResolvedValue is the value after reference resolution.
	ResolvedValue any `json:"-"`

	// IsResolved indicates if reference resolution has been performed.
	IsResolved bool `json:"-"`
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g., "--color-primary"
func (t *Token) CSSVariableName() string {
	if t.Name == "" {
		return ""
	}
	return "--" + strings.ReplaceAll(t.Name, ".", "-")
}

// VarRef returns a CSS var() reference to this token, e.g. "var(--color-primary)".
func (t *Token) VarRef() string {
	return "var(" + t.CSSVariableName() + ")"
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// HasSegment reports whether any path segment equals seg.
func (t *Token) HasSegment(seg string) bool {
	return seg != "" && slices.Contains(t.Path, seg)
}

// HasPrefix reports whether the token's first path segment is the given prefix.
// An empty prefix never matches.
func (t *Token) HasPrefix(prefix string) bool {
	return prefix != "" && len(t.Path) > 0 && t.Path[0] == prefix
}

// Clone returns a copy of the token with its own path slice.
func (t *Token) Clone() *Token {
	c := *t
	c.Path = slices.Clone(t.Path)
	return &c
}

// TrimDefault returns path without a trailing DEFAULT segment.
func TrimDefault(path []string) []string {
	if n := len(path); n > 0 && path[n-1] == DefaultSegment {
		return path[:n-1]
	}
	return path
}

// TrimPrefix returns path without a leading prefix segment.
func TrimPrefix(path []string, prefix string) []string {
	if prefix != "" && len(path) > 0 && path[0] == prefix {
		return path[1:]
	}
	return path
}

// Stringify renders a resolved value as the string a stylesheet would hold.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case map[string]any, []any:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", x)
	}
}
