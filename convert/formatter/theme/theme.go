/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme provides the nested Tailwind theme formatter.
//
// Tokens are classified into theme buckets by category, colour scales are
// nested to any depth, and brand override tokens are merged over base tokens.
// Colour groups holding only a DEFAULT collapse to scalars.
package theme

import (
	"strings"

	"golang.org/x/text/cases"

	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/convert/formatter/js"
	"bennypowers.dev/tokenwind/internal/ordered"
	"bennypowers.dev/tokenwind/token"
)

// Formatter outputs a designTokens export shaped like a Tailwind theme.
type Formatter struct{}

// New creates a new nested theme formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a JavaScript module.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	module, err := js.ParseModule(opts.Module)
	if err != nil {
		return nil, err
	}
	return js.Render(module, js.Export{Name: "designTokens", Value: Build(tokens, opts)})
}

// assignment is one write into the theme object. keys starts with the bucket.
type assignment struct {
	keys  []string
	value string
}

// Build returns the theme object for tokens.
func Build(tokens []*token.Token, opts formatter.Options) *ordered.Object {
	base, overrides := formatter.Partition(
		formatter.WithoutMarker(tokens, opts.DarkModeMarkerOrDefault()),
		opts.BrandPrefix,
	)

	result := ordered.New()
	for _, bucket := range Buckets {
		result.Set(bucket, ordered.New())
	}

	baseWrites, _ := basePass(base)
	merge(result, baseWrites, overridePass(overrides, opts.BrandPrefix))

	if colors, ok := bucket(result, "colors"); ok {
		collapse(colors)
	}
	for _, name := range result.Keys() {
		if b, ok := bucket(result, name); ok && b.Len() == 0 {
			result.Delete(name)
		}
	}
	mirrorPrimary(result)
	return result
}

// Dropped returns the tokens Build leaves out of the theme, excluding
// dark-mode tokens.
func Dropped(tokens []*token.Token, opts formatter.Options) []*token.Token {
	base, _ := formatter.Partition(
		formatter.WithoutMarker(tokens, opts.DarkModeMarkerOrDefault()),
		opts.BrandPrefix,
	)
	_, dropped := basePass(base)
	return dropped
}

func basePass(tokens []*token.Token) (writes []assignment, dropped []*token.Token) {
	for _, tok := range tokens {
		c, i, ok := match(tok.Path)
		if !ok {
			dropped = append(dropped, tok)
			continue
		}
		value := tok.VarRef()
		if c.raw {
			value = tok.Value
		}
		a, ok := place(c, tok.Path, i, value)
		if !ok {
			dropped = append(dropped, tok)
			continue
		}
		writes = append(writes, a)
	}
	return writes, dropped
}

func overridePass(tokens []*token.Token, brandPrefix string) []assignment {
	fold := cases.Fold()
	var writes []assignment
	for _, tok := range tokens {
		path := token.TrimPrefix(tok.Path, brandPrefix)
		if len(path) == 0 {
			continue
		}

		if c, i, ok := match(path); ok && c.place != placeLeaf {
			if a, ok := place(c, path, i, tok.Value); ok {
				writes = append(writes, a)
			}
			continue
		}

		if strings.HasSuffix(fold.String(path[len(path)-1]), "radius") {
			writes = append(writes, assignment{
				keys:  []string{radiusBucket, token.DefaultSegment},
				value: tok.Value,
			})
			continue
		}

		target := fallbackBucket
		if c, ok := matchSubstring(path); ok {
			target = c.target
		}
		writes = append(writes, assignment{
			keys:  []string{target, leafKey(path)},
			value: tok.Value,
		})
	}
	return writes
}

// place computes where a token of category c goes. i is the index of the
// segment that matched c.
func place(c category, path []string, i int, value string) (assignment, bool) {
	switch c.place {
	case placeColor:
		rest := path[i+1:]
		if len(rest) == 0 {
			return assignment{}, false
		}
		keys := append([]string{c.target}, rest...)
		return assignment{keys: keys, value: value}, true
	default:
		return assignment{keys: []string{c.target, leafKey(path)}, value: value}, true
	}
}

// leafKey is the last segment, or the one before it when the last is DEFAULT.
// A path of only DEFAULT has no parent and keeps DEFAULT as its key.
func leafKey(path []string) string {
	n := len(path)
	if n > 1 && path[n-1] == token.DefaultSegment {
		return path[n-2]
	}
	return path[n-1]
}

// merge applies each list of writes in order. Later writes win.
func merge(result *ordered.Object, passes ...[]assignment) {
	for _, writes := range passes {
		for _, a := range writes {
			n := len(a.keys)
			parent := result.Path(a.keys[:n-1]...)
			last := a.keys[n-1]
			if existing, ok := parent.Get(last); ok {
				if obj, isObj := existing.(*ordered.Object); isObj {
					obj.Set(token.DefaultSegment, a.value)
					continue
				}
			}
			parent.Set(last, a.value)
		}
	}
}

// collapse walks groups bottom-up. A group holding only DEFAULT becomes that
// value; a group holding DEFAULT and other keys loses DEFAULT.
func collapse(obj *ordered.Object) {
	for _, key := range obj.Keys() {
		child, ok := bucket(obj, key)
		if !ok {
			continue
		}
		collapse(child)
		def, ok := child.Get(token.DefaultSegment)
		if !ok {
			continue
		}
		if child.Len() == 1 {
			obj.Set(key, def)
		} else {
			child.Delete(token.DefaultSegment)
		}
	}
}

// mirrorPrimary sets colors.primary.DEFAULT to colors.primary.600 when present.
func mirrorPrimary(result *ordered.Object) {
	colors, ok := bucket(result, "colors")
	if !ok {
		return
	}
	primary, ok := bucket(colors, "primary")
	if !ok {
		return
	}
	if shade, ok := primary.Get("600"); ok {
		primary.Set(token.DefaultSegment, shade)
	}
}

func bucket(obj *ordered.Object, key string) (*ordered.Object, bool) {
	v, ok := obj.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*ordered.Object)
	return child, ok
}
