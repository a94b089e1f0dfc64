/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses npm: and jsr: token source specifiers and
// resolves them to installed files or CDN URLs.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindJSR is a jsr package specifier.
	KindJSR
)

// Specifier represents a parsed package specifier.
type Specifier struct {
	// Kind is the type of specifier (local, npm, jsr).
	Kind Kind

	// Package is the package name, with any version (e.g. "@scope/pkg@1.2.3").
	Package string

	// File is the file path within the package.
	File string

	// Raw is the original specifier string.
	Raw string
}

var (
	// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
	npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

	// jsrPattern matches jsr:@scope/pkg/path; jsr packages are always scoped
	jsrPattern = regexp.MustCompile(`^jsr:(@[^/]+/[^/]+)(/.*)?$`)
)

// Parse parses a specifier string. Anything that is not a well-formed
// package specifier is a local path.
func Parse(spec string) *Specifier {
	for _, p := range []struct {
		kind    Kind
		pattern *regexp.Regexp
	}{
		{KindNPM, npmPattern},
		{KindJSR, jsrPattern},
	} {
		if m := p.pattern.FindStringSubmatch(spec); len(m) == 3 {
			return &Specifier{
				Kind:    p.kind,
				Package: m[1],
				File:    strings.TrimPrefix(m[2], "/"),
				Raw:     spec,
			}
		}
	}
	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsPackage reports whether spec is a valid npm: or jsr: specifier.
func IsPackage(spec string) bool {
	return Parse(spec).Kind != KindLocal
}

// Name returns the package name without a version suffix.
func (s *Specifier) Name() string {
	name := s.Package
	offset := 0
	if strings.HasPrefix(name, "@") {
		offset = 1
	}
	if i := strings.Index(name[offset:], "@"); i >= 0 {
		return name[:offset+i]
	}
	return name
}

// ModuleDir returns the package directory relative to node_modules.
// jsr packages installed through the npm compatibility layer live under
// @jsr, with "@scope/pkg" renamed to "scope__pkg".
func (s *Specifier) ModuleDir() string {
	name := s.Name()
	if s.Kind == KindJSR {
		return "@jsr/" + strings.Replace(strings.TrimPrefix(name, "@"), "/", "__", 1)
	}
	return name
}
