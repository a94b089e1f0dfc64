/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tailwind provides a flat Tailwind theme formatter. Tokens of a few
// fixed categories become nested objects of var() references.
package tailwind

import (
	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/convert/formatter/js"
	"bennypowers.dev/tokenwind/internal/ordered"
	"bennypowers.dev/tokenwind/token"
)

// Categories are the top-level path segments this formatter keeps, in output order.
var Categories = []string{"color", "spacing", "fontSize", "borderRadius"}

// themeKeys maps each category to its Tailwind theme key.
var themeKeys = map[string]string{
	"color":        "colors",
	"spacing":      "spacing",
	"fontSize":     "fontSize",
	"borderRadius": "borderRadius",
}

// Formatter outputs designTokens and theme exports.
type Formatter struct{}

// New creates a new flat Tailwind formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a JavaScript module.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	module, err := js.ParseModule(opts.Module)
	if err != nil {
		return nil, err
	}

	result := Build(tokens)
	theme := ordered.New()
	for _, cat := range Categories {
		bucket, _ := result.Get(cat)
		theme.Set(themeKeys[cat], bucket)
	}

	return js.Render(module,
		js.Export{Name: "designTokens", Value: result},
		js.Export{Name: "theme", Value: theme},
	)
}

// Build places every token of a known category under result[category],
// nested by the remaining path segments with a trailing DEFAULT dropped.
// Every category is present even when empty.
func Build(tokens []*token.Token) *ordered.Object {
	result := ordered.New()
	buckets := make(map[string]*ordered.Object, len(Categories))
	for _, cat := range Categories {
		buckets[cat] = result.Child(cat)
	}

	for _, tok := range tokens {
		if tok == nil || len(tok.Path) == 0 {
			continue
		}
		cat := tok.Path[0]
		bucket, ok := buckets[cat]
		if !ok {
			continue
		}

		keys := token.TrimDefault(tok.Path[1:])
		leaf := cat
		if n := len(keys); n > 0 {
			leaf = keys[n-1]
			keys = keys[:n-1]
		}
		parent := bucket.Path(keys...)
		if existing, ok := parent.Get(leaf); ok {
			// a group already lives here; the token becomes its default
			if obj, isObj := existing.(*ordered.Object); isObj {
				obj.Set(token.DefaultSegment, tok.VarRef())
				continue
			}
		}
		parent.Set(leaf, tok.VarRef())
	}

	mirrorPrimary(buckets["color"])
	return result
}

// mirrorPrimary sets colors.primary.DEFAULT to the 600 shade when missing.
func mirrorPrimary(colors *ordered.Object) {
	v, ok := colors.Get("primary")
	if !ok {
		return
	}
	primary, ok := v.(*ordered.Object)
	if !ok || primary.Has(token.DefaultSegment) {
		return
	}
	if shade, ok := primary.Get("600"); ok {
		primary.Set(token.DefaultSegment, shade)
	}
}
