/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"slices"
	"testing"

	"bennypowers.dev/tokenwind/token"
)

func TestToken_CSSVariableName(t *testing.T) {
	tests := []struct {
		name     string
		token    token.Token
		expected string
	}{
		{
			name:     "simple name",
			token:    token.Token{Name: "color-primary"},
			expected: "--color-primary",
		},
		{
			name:     "dotted name",
			token:    token.Token{Name: "color.primary"},
			expected: "--color-primary",
		},
		{
			name:     "empty name",
			token:    token.Token{Name: ""},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.CSSVariableName(); got != tt.expected {
				t.Errorf("Token.CSSVariableName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToken_VarRef(t *testing.T) {
	tok := token.Token{Name: "color-primary-600"}
	if got := tok.VarRef(); got != "var(--color-primary-600)" {
		t.Errorf("VarRef() = %q", got)
	}
}

func TestToken_HasPrefix(t *testing.T) {
	tok := token.Token{Path: []string{"brand", "color", "primary"}}
	if !tok.HasPrefix("brand") {
		t.Error("expected brand prefix")
	}
	if tok.HasPrefix("") {
		t.Error("empty prefix must never match")
	}
	if tok.HasPrefix("color") {
		t.Error("only the first segment counts")
	}
}

func TestToken_HasSegment(t *testing.T) {
	tok := token.Token{Path: []string{"color", "dark", "bg"}}
	if !tok.HasSegment("dark") {
		t.Error("expected dark segment")
	}
	if tok.HasSegment("") {
		t.Error("empty segment must never match")
	}
}

func TestToken_Clone(t *testing.T) {
	tok := &token.Token{Name: "a", Path: []string{"a", "b"}}
	c := tok.Clone()
	c.Path[0] = "z"
	c.Name = "z"
	if tok.Path[0] != "a" || tok.Name != "a" {
		t.Error("clone must not share state with the original")
	}
}

func TestTrimDefault(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"color", "accent", "DEFAULT"}, []string{"color", "accent"}},
		{[]string{"color", "accent"}, []string{"color", "accent"}},
		{[]string{"DEFAULT"}, []string{}},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := token.TrimDefault(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("TrimDefault(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTrimPrefix(t *testing.T) {
	if got := token.TrimPrefix([]string{"brand", "color"}, "brand"); !slices.Equal(got, []string{"color"}) {
		t.Errorf("got %v", got)
	}
	if got := token.TrimPrefix([]string{"color", "brand"}, "brand"); !slices.Equal(got, []string{"color", "brand"}) {
		t.Errorf("got %v", got)
	}
	if got := token.TrimPrefix([]string{"color"}, ""); !slices.Equal(got, []string{"color"}) {
		t.Errorf("got %v", got)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"4px", "4px"},
		{16, "16"},
		{1.5, "1.5"},
		{float64(400), "400"},
		{true, "true"},
		{map[string]any{"x": 1}, `{"x":1}`},
	}
	for _, tt := range tests {
		if got := token.Stringify(tt.in); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReferences(t *testing.T) {
	if !token.IsWholeRef("{color.primary}") {
		t.Error("expected whole ref")
	}
	if token.IsWholeRef("1px solid {color.primary}") {
		t.Error("embedded ref is not whole")
	}
	refs := token.ExtractAllRefs("{size.sm.value} {color.primary}")
	if !slices.Equal(refs, []string{"size.sm", "color.primary"}) {
		t.Errorf("ExtractAllRefs = %v", refs)
	}
	path, ok := token.ParseCurlyBraceRef("{ color.primary.value }")
	if !ok || path != "color.primary" {
		t.Errorf("ParseCurlyBraceRef = %q, %v", path, ok)
	}
	got := token.ReplaceRefs("1px solid {color.border}", func(ref string) string { return "<" + ref + ">" })
	if got != "1px solid <color.border>" {
		t.Errorf("ReplaceRefs = %q", got)
	}
}
