/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import "bennypowers.dev/tokenwind/token"

// CTI derives category/type/item attributes from a token path.
// Brand-prefixed tokens are classified by the path under the prefix.
func CTI(path []string, brandPrefix string) token.Attributes {
	p := token.TrimPrefix(path, brandPrefix)
	at := func(i int) string {
		if i < len(p) {
			return p[i]
		}
		return ""
	}
	return token.Attributes{
		Category: at(0),
		Type:     at(1),
		Item:     at(2),
		Subitem:  at(3),
		State:    at(4),
	}
}
