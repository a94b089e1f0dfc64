/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import "strings"

// placement is how a category nests its tokens.
type placement int

const (
	// placeLeaf writes result[target][leafKey].
	placeLeaf placement = iota
	// placeColor nests every remaining path segment under result[target].
	placeColor
)

// category maps a token category key to a theme bucket.
type category struct {
	key    string
	target string
	// raw emits the token value instead of a var() reference.
	raw   bool
	place placement
}

// categories is ordered for substring matching: longer keys come before
// keys they contain.
var categories = []category{
	{key: "color", target: "colors", place: placeColor},
	{key: "fontSize", target: "fontSize"},
	{key: "font-size", target: "fontSize"},
	{key: "fontFamily", target: "fontFamily", raw: true},
	{key: "font-family", target: "fontFamily", raw: true},
	{key: "fontWeight", target: "fontWeight", raw: true},
	{key: "font-weight", target: "fontWeight", raw: true},
	{key: "lineHeight", target: "lineHeight"},
	{key: "line-height", target: "lineHeight"},
	{key: "letterSpacing", target: "letterSpacing"},
	{key: "letter-spacing", target: "letterSpacing"},
	{key: "borderRadius", target: "borderRadius"},
	{key: "border-radius", target: "borderRadius"},
	{key: "radius", target: "borderRadius"},
	{key: "borderWidth", target: "borderWidth"},
	{key: "border-width", target: "borderWidth"},
	{key: "boxShadow", target: "boxShadow"},
	{key: "shadow", target: "boxShadow"},
	{key: "opacity", target: "opacity", raw: true},
	{key: "zIndex", target: "zIndex", raw: true},
	{key: "z-index", target: "zIndex", raw: true},
	{key: "screens", target: "screens", raw: true},
	{key: "breakpoint", target: "screens", raw: true},
	{key: "transitionDuration", target: "transitionDuration"},
	{key: "duration", target: "transitionDuration"},
	{key: "easing", target: "transitionTimingFunction"},
	{key: "blur", target: "blur"},
	{key: "spacing", target: "spacing"},
	{key: "size", target: "spacing"},
}

// Buckets lists the theme buckets in output order.
var Buckets = []string{
	"colors",
	"spacing",
	"fontSize",
	"fontFamily",
	"fontWeight",
	"lineHeight",
	"letterSpacing",
	"borderRadius",
	"borderWidth",
	"boxShadow",
	"opacity",
	"zIndex",
	"screens",
	"transitionDuration",
	"transitionTimingFunction",
	"blur",
}

const (
	fallbackBucket = "spacing"
	radiusBucket   = "borderRadius"
)

// byKey returns the category whose key equals seg.
func byKey(seg string) (category, bool) {
	for _, c := range categories {
		if c.key == seg {
			return c, true
		}
	}
	return category{}, false
}

// match returns the category of the first path segment that is a category key,
// with that segment's index.
func match(path []string) (category, int, bool) {
	for i, seg := range path {
		if c, ok := byKey(seg); ok {
			return c, i, true
		}
	}
	return category{}, -1, false
}

// matchSubstring returns the first category whose key occurs in the joined path.
func matchSubstring(path []string) (category, bool) {
	joined := strings.Join(path, ".")
	for _, c := range categories {
		if strings.Contains(joined, c.key) {
			return c, true
		}
	}
	return category{}, false
}
