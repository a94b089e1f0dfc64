/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		spec      string
		kind      Kind
		pkg       string
		file      string
		name      string
		moduleDir string
	}{
		{"npm:@rhds/tokens/tokens.json", KindNPM, "@rhds/tokens", "tokens.json", "@rhds/tokens", "@rhds/tokens"},
		{"npm:simple-tokens/colors.json", KindNPM, "simple-tokens", "colors.json", "simple-tokens", "simple-tokens"},
		{"npm:@scope/pkg/json/tokens.json", KindNPM, "@scope/pkg", "json/tokens.json", "@scope/pkg", "@scope/pkg"},
		{"npm:@scope/pkg@1.2.3/tokens.json", KindNPM, "@scope/pkg@1.2.3", "tokens.json", "@scope/pkg", "@scope/pkg"},
		{"npm:pkg@2/tokens.json", KindNPM, "pkg@2", "tokens.json", "pkg", "pkg"},
		{"npm:@rhds/tokens", KindNPM, "@rhds/tokens", "", "@rhds/tokens", "@rhds/tokens"},
		{"jsr:@std/tokens/mod.json", KindJSR, "@std/tokens", "mod.json", "@std/tokens", "@jsr/std__tokens"},
		{"jsr:unscoped/mod.json", KindLocal, "", "jsr:unscoped/mod.json", "", ""},
		{"./tokens/colors.json", KindLocal, "", "./tokens/colors.json", "", ""},
		{"/abs/tokens.json", KindLocal, "", "/abs/tokens.json", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			spec := Parse(tt.spec)
			if spec.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", spec.Kind, tt.kind)
			}
			if spec.Package != tt.pkg {
				t.Errorf("Package = %q, want %q", spec.Package, tt.pkg)
			}
			if spec.File != tt.file {
				t.Errorf("File = %q, want %q", spec.File, tt.file)
			}
			if spec.Raw != tt.spec {
				t.Errorf("Raw = %q, want %q", spec.Raw, tt.spec)
			}
			if spec.Kind == KindLocal {
				return
			}
			if got := spec.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := spec.ModuleDir(); got != tt.moduleDir {
				t.Errorf("ModuleDir() = %q, want %q", got, tt.moduleDir)
			}
		})
	}
}

func TestIsPackage(t *testing.T) {
	tests := map[string]bool{
		"npm:@scope/pkg/file.json": true,
		"npm:pkg/file.json":        true,
		"jsr:@scope/pkg/file.json": true,
		"jsr:pkg/file.json":        false,
		"tokens/**/*.json":         false,
		"https://example.com/t":    false,
	}
	for spec, want := range tests {
		if got := IsPackage(spec); got != want {
			t.Errorf("IsPackage(%q) = %v, want %v", spec, got, want)
		}
	}
}
