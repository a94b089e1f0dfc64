/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenwind/token"
)

// sizeCategories are the top-level categories whose unitless numbers are pixel lengths.
var sizeCategories = []string{
	"size", "spacing", "fontSize", "font-size", "borderRadius", "border-radius",
	"radius", "borderWidth", "border-width", "letterSpacing", "blur",
}

// sizeTypes are the token types whose unitless numbers are pixel lengths.
var sizeTypes = []string{"dimension", "size", "spacing", "fontSize", "borderRadius", "borderWidth"}

// IsSize reports whether a token holds a length.
func IsSize(t *token.Token) bool {
	return slices.Contains(sizeTypes, t.Type) || slices.Contains(sizeCategories, t.Attributes.Category)
}

// IsColor reports whether a token holds a color.
func IsColor(t *token.Token) bool {
	return t.Type == "color" || t.Attributes.Category == "color"
}

// Px appends "px" to a unitless number. Anything else is returned unchanged.
func Px(value string) string {
	v := strings.TrimSpace(value)
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return value
	}
	return v + "px"
}

// CSSColor normalizes a color to #rrggbb, or rgba() when it is translucent.
// Values the parser does not understand (currentColor, var(), ...) pass through.
func CSSColor(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return value
	}
	if c.A >= 1 {
		return c.HexString()
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.A))
}

// HSLColor renders a color as a CSS hsl() function.
// Values the parser does not understand pass through.
func HSLColor(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return value
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	hsl := fmt.Sprintf("%s %s%% %s%%", round(h), round(s*100), round(l*100))
	if c.A < 1 {
		return fmt.Sprintf("hsl(%s / %s)", hsl, formatAlpha(c.A))
	}
	return fmt.Sprintf("hsl(%s)", hsl)
}

func round(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*1000)/1000, 'f', -1, 64)
}
