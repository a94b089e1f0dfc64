/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tailwind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/convert/formatter/tailwind"
	"bennypowers.dev/tokenwind/internal/ordered"
	"bennypowers.dev/tokenwind/token"
)

func tk(name string, path ...string) *token.Token {
	return &token.Token{Name: name, Value: "x", Path: path}
}

func get(t *testing.T, obj *ordered.Object, keys ...string) any {
	t.Helper()
	var cur any = obj
	for _, k := range keys {
		o, ok := cur.(*ordered.Object)
		require.Truef(t, ok, "expected object at %q", k)
		cur, ok = o.Get(k)
		require.Truef(t, ok, "missing key %q", k)
	}
	return cur
}

func TestFormat(t *testing.T) {
	tokens := []*token.Token{
		tk("color-primary-600", "color", "primary", "600"),
		tk("color-primary-100", "color", "primary", "100"),
		tk("color-accent", "color", "accent", "DEFAULT"),
		tk("spacing-sm", "spacing", "sm"),
		tk("opacity-50", "opacity", "50"),
		tk("fontSize", "fontSize", "DEFAULT"),
	}

	out, err := tailwind.New().Format(tokens, formatter.Options{})
	require.NoError(t, err)

	expected := `// Auto-generated from design tokens
export const designTokens = {
    "color": {
        "primary": {
            "100": "var(--color-primary-100)",
            "600": "var(--color-primary-600)",
            "DEFAULT": "var(--color-primary-600)"
        },
        "accent": "var(--color-accent)"
    },
    "spacing": {
        "sm": "var(--spacing-sm)"
    },
    "fontSize": {
        "fontSize": "var(--fontSize)"
    },
    "borderRadius": {}
};

export const theme = {
    "colors": {
        "primary": {
            "100": "var(--color-primary-100)",
            "600": "var(--color-primary-600)",
            "DEFAULT": "var(--color-primary-600)"
        },
        "accent": "var(--color-accent)"
    },
    "spacing": {
        "sm": "var(--spacing-sm)"
    },
    "fontSize": {
        "fontSize": "var(--fontSize)"
    },
    "borderRadius": {}
};`
	assert.Equal(t, expected, string(out))
}

func TestFormat_CommonJS(t *testing.T) {
	out, err := tailwind.New().Format(nil, formatter.Options{Module: "cjs"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n\nmodule.exports = { designTokens, theme };")
	assert.NotContains(t, string(out), "export const")
}

func TestFormat_UnknownModule(t *testing.T) {
	_, err := tailwind.New().Format(nil, formatter.Options{Module: "amd"})
	assert.Error(t, err)
}

func TestBuild_AllCategoriesPresent(t *testing.T) {
	result := tailwind.Build(nil)
	assert.Equal(t, tailwind.Categories, result.Keys())
	for _, cat := range tailwind.Categories {
		bucket := get(t, result, cat).(*ordered.Object)
		assert.Equal(t, 0, bucket.Len())
	}
}

func TestBuild_IgnoresBrandOverrides(t *testing.T) {
	result := tailwind.Build([]*token.Token{
		tk("brand-color-primary", "brand", "color", "primary"),
	})
	assert.Equal(t, 0, get(t, result, "color").(*ordered.Object).Len())
}

func TestBuild_ExplicitPrimaryDefaultKept(t *testing.T) {
	result := tailwind.Build([]*token.Token{
		tk("color-primary", "color", "primary", "DEFAULT"),
		tk("color-primary-600", "color", "primary", "600"),
	})
	// the DEFAULT token is placed as a scalar, then moved under DEFAULT when 600 arrives
	assert.Equal(t, "var(--color-primary)", get(t, result, "color", "primary", "DEFAULT"))
	assert.Equal(t, "var(--color-primary-600)", get(t, result, "color", "primary", "600"))
}

func TestBuild_GroupThenDefault(t *testing.T) {
	result := tailwind.Build([]*token.Token{
		tk("color-gray-100", "color", "gray", "100"),
		tk("color-gray", "color", "gray", "DEFAULT"),
	})
	assert.Equal(t, "var(--color-gray)", get(t, result, "color", "gray", "DEFAULT"))
	assert.Equal(t, "var(--color-gray-100)", get(t, result, "color", "gray", "100"))
}

func TestBuild_NoPrimary600(t *testing.T) {
	result := tailwind.Build([]*token.Token{
		tk("color-primary-100", "color", "primary", "100"),
	})
	primary := get(t, result, "color", "primary").(*ordered.Object)
	assert.False(t, primary.Has(token.DefaultSegment))
}
