/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package flatjson_test

import (
	"testing"

	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/convert/formatter/flatjson"
	"bennypowers.dev/tokenwind/token"
)

func TestFormat(t *testing.T) {
	tokens := []*token.Token{
		{Name: "spacing-sm", Value: "4px", Path: []string{"spacing", "sm"}},
		{Name: "color-primary", Value: "#111", Path: []string{"brand", "color", "primary"}},
		{Name: "color-primary", Value: "#2563eb", Path: []string{"color", "primary"}},
		{Name: "z-10", Value: "10", Path: []string{"z", "10"}},
	}
	out, err := flatjson.New().Format(tokens, formatter.Options{BrandPrefix: "brand"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{
  "color-primary": "#111",
  "spacing-sm": "4px",
  "z-10": "10"
}`
	if string(out) != expected {
		t.Errorf("got:\n%s\n\nexpected:\n%s", out, expected)
	}
}
