/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides the per-token transforms applied before
// formatting: attribute derivation, naming and value normalization.
package transform

import (
	"fmt"
	"slices"
	"sort"

	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

// Kind is the stage a transform belongs to.
type Kind int

const (
	// KindAttribute transforms fill in token attributes.
	KindAttribute Kind = iota
	// KindName transforms set the token name.
	KindName
	// KindValue transforms rewrite the token value.
	KindValue
)

// Options configures transforms.
type Options struct {
	// BrandPrefix is the leading path segment marking override tokens.
	BrandPrefix string
}

// Transform is a named per-token transform.
type Transform struct {
	Name string
	Kind Kind
	// Matcher restricts the transform to some tokens. Nil matches every token.
	Matcher func(*token.Token) bool
	Apply   func(*token.Token, Options)
}

const (
	AttributeCTI = "attribute/cti"
	NameSimple   = "name/simple"
	NameBrand    = "name/brand"
	SizePx       = "size/px"
	ColorCSS     = "color/css"
	ColorHSL     = "color/hsl"
)

var builtins = map[string]Transform{
	AttributeCTI: {
		Name: AttributeCTI,
		Kind: KindAttribute,
		Apply: func(t *token.Token, opts Options) {
			t.Attributes = CTI(t.Path, opts.BrandPrefix)
		},
	},
	NameSimple: {
		Name: NameSimple,
		Kind: KindName,
		Apply: func(t *token.Token, _ Options) {
			t.Name = Name(t.Path, "")
		},
	},
	NameBrand: {
		Name: NameBrand,
		Kind: KindName,
		Apply: func(t *token.Token, opts Options) {
			t.Name = Name(t.Path, opts.BrandPrefix)
		},
	},
	SizePx: {
		Name:    SizePx,
		Kind:    KindValue,
		Matcher: IsSize,
		Apply: func(t *token.Token, _ Options) {
			t.Value = Px(t.Value)
		},
	},
	ColorCSS: {
		Name:    ColorCSS,
		Kind:    KindValue,
		Matcher: IsColor,
		Apply: func(t *token.Token, _ Options) {
			t.Value = CSSColor(t.Value)
		},
	},
	ColorHSL: {
		Name:    ColorHSL,
		Kind:    KindValue,
		Matcher: IsColor,
		Apply: func(t *token.Token, _ Options) {
			t.Value = HSLColor(t.Value)
		},
	},
}

var groups = map[string][]string{
	"css/simple": {AttributeCTI, NameSimple, SizePx, ColorCSS},
	"css/brand":  {AttributeCTI, NameBrand, SizePx, ColorCSS},
	"css/hsl":    {AttributeCTI, NameBrand, SizePx, ColorHSL},
}

// Lookup returns a registered transform by name.
func Lookup(name string) (Transform, error) {
	t, ok := builtins[name]
	if !ok {
		return Transform{}, fmt.Errorf("%w: %s", schema.ErrUnknownTransform, name)
	}
	return t, nil
}

// Group returns the transform names of a registered transform group.
func Group(name string) ([]string, error) {
	names, ok := groups[name]
	if !ok {
		return nil, fmt.Errorf("%w group: %s", schema.ErrUnknownTransform, name)
	}
	return slices.Clone(names), nil
}

// Groups returns the names of all registered transform groups, sorted.
func Groups() []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve expands a transform group plus extra transform names into transforms.
// Extra transforms run after the group's own.
func Resolve(group string, extra []string) ([]Transform, error) {
	var names []string
	if group != "" {
		g, err := Group(group)
		if err != nil {
			return nil, err
		}
		names = g
	}
	names = append(names, extra...)

	result := make([]Transform, 0, len(names))
	for _, name := range names {
		t, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

// Apply runs transforms over every token in place. Attribute transforms run
// first, then name transforms, then value transforms, so value matchers can
// rely on attributes. Within a stage the listed order is kept.
func Apply(tokens []*token.Token, transforms []Transform, opts Options) {
	for _, kind := range []Kind{KindAttribute, KindName, KindValue} {
		for _, tr := range transforms {
			if tr.Kind != kind {
				continue
			}
			for _, t := range tokens {
				if tr.Matcher == nil || tr.Matcher(t) {
					tr.Apply(t, opts)
				}
			}
		}
	}
}
