/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"strings"
)

// CDN names a package CDN used for packages that are not installed.
type CDN string

const (
	CDNUnpkg    CDN = "unpkg"
	CDNEsmSh    CDN = "esm.sh"
	CDNEsmRun   CDN = "esm.run"
	CDNJspm     CDN = "jspm"
	CDNJsdelivr CDN = "jsdelivr"
)

var cdns = []CDN{CDNUnpkg, CDNEsmSh, CDNEsmRun, CDNJspm, CDNJsdelivr}

// ValidCDNs returns the supported CDN names.
func ValidCDNs() []string {
	names := make([]string, len(cdns))
	for i, c := range cdns {
		names[i] = string(c)
	}
	return names
}

// ParseCDN converts a CDN name.
func ParseCDN(s string) (CDN, error) {
	for _, c := range cdns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown CDN %q (valid: %s)", s, strings.Join(ValidCDNs(), ", "))
}

// CDNURL returns the URL of a package file on cdn. The zero CDN is unpkg.
// Returns ("", false) for local paths, specifiers without a file, and jsr
// packages on CDNs that only mirror npm.
func CDNURL(spec string, cdn CDN) (string, bool) {
	parsed := Parse(spec)
	if parsed.Kind == KindLocal || parsed.File == "" {
		return "", false
	}
	path := parsed.Package + "/" + parsed.File

	if parsed.Kind == KindJSR {
		if cdn != CDNEsmSh {
			return "", false
		}
		return "https://esm.sh/jsr/" + path, true
	}

	switch cdn {
	case "", CDNUnpkg:
		return "https://unpkg.com/" + path, true
	case CDNEsmSh:
		return "https://esm.sh/" + path, true
	case CDNEsmRun:
		return "https://esm.run/" + path, true
	case CDNJspm:
		return "https://ga.jspm.io/npm:" + path, true
	case CDNJsdelivr:
		return "https://cdn.jsdelivr.net/npm/" + path, true
	}
	return "", false
}
