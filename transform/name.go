/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"strings"

	"bennypowers.dev/tokenwind/token"
)

// Name derives a flat CSS variable name from a token path: a trailing
// DEFAULT segment is dropped, a leading brandPrefix segment is dropped when
// brandPrefix is non-empty, and the remaining segments are joined with "-".
//
//	["color", "primary", "600"]       -> "color-primary-600"
//	["color", "accent", "DEFAULT"]    -> "color-accent"
//	["brand", "color", "primary"]     -> "color-primary" (brandPrefix "brand")
func Name(path []string, brandPrefix string) string {
	return strings.Join(token.TrimPrefix(token.TrimDefault(path), brandPrefix), "-")
}
