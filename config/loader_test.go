/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/tokenwind/internal/mapfs"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.BrandPrefix != "brand" {
		t.Errorf("expected brandPrefix 'brand', got %q", cfg.BrandPrefix)
	}
	if cfg.DarkModeMarker != "night" {
		t.Errorf("expected darkModeMarker 'night', got %q", cfg.DarkModeMarker)
	}
	if cfg.SchemaVersion() != schema.Legacy {
		t.Errorf("expected schema version Legacy, got %v", cfg.SchemaVersion())
	}
	if !slices.Equal(cfg.PlatformNames(), []string{"css", "js"}) {
		t.Fatalf("unexpected platforms %v", cfg.PlatformNames())
	}

	css := cfg.Platforms["css"]
	if len(css.Files) != 2 {
		t.Fatalf("expected 2 css files, got %d", len(css.Files))
	}
	if css.Files[0].Options.Selector != ":host" {
		t.Errorf("expected selector ':host', got %q", css.Files[0].Options.Selector)
	}
	if css.Files[1].Format != "css/tailwind-theme" || css.Files[1].Destination != "theme.css" {
		t.Errorf("shorthand not parsed: %+v", css.Files[1])
	}

	js := cfg.Platforms["js"]
	if !slices.Equal(js.Transforms, []string{"color/hsl"}) {
		t.Errorf("unexpected transforms %v", js.Transforms)
	}
	if js.Files[0].Options.Module != "cjs" {
		t.Errorf("expected module cjs, got %q", js.Files[0].Options.Module)
	}

	opts := cfg.FormatterOptions(css.Files[0])
	if opts.Selector != ":host" || opts.BrandPrefix != "brand" || opts.DarkModeMarker != "night" {
		t.Errorf("unexpected formatter options %+v", opts)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	files := cfg.Platforms["js"].Files
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Format != "javascript/tailwind-simple" || files[0].Destination != "design-tokens.js" {
		t.Errorf("shorthand not parsed: %+v", files[0])
	}
	if !slices.Equal(files[1].Options.SemanticNames, []string{"brand", "accent"}) {
		t.Errorf("unexpected semantic names %v", files[1].Options.SemanticNames)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}

	cfg, err = LoadOrDefault(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cfg.Source, []string{"tokens/**/*.json"}) {
		t.Errorf("expected default sources, got %v", cfg.Source)
	}
}

func TestLoad_InvalidShorthand(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokenwind.yaml", "platforms:\n  css:\n    files:\n      - just-a-name.css\n", 0644)

	_, err := Load(mfs, "/project")
	if err == nil || !strings.Contains(err.Error(), "format:destination") {
		t.Errorf("expected shorthand error, got %v", err)
	}
}

func TestLoad_Priority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokenwind.json", `{"brandPrefix": "json"}`, 0644)
	mfs.AddFile("/project/.config/tokenwind.yaml", "brandPrefix: yaml\n", 0644)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BrandPrefix != "yaml" {
		t.Errorf("expected yaml config to win, got %q", cfg.BrandPrefix)
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokenwind.yaml", "brandPrefix: found\n", 0644)
	mfs.AddFile("/elsewhere/custom.yml", "brandPrefix: explicit\n", 0644)

	cfg, err := Resolve(mfs, "/project", "/elsewhere/custom.yml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BrandPrefix != "explicit" {
		t.Errorf("expected explicit config, got %q", cfg.BrandPrefix)
	}

	cfg, err = Resolve(mfs, "/project", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BrandPrefix != "found" {
		t.Errorf("expected discovered config, got %q", cfg.BrandPrefix)
	}

	if _, err := Resolve(mfs, "/project", "/missing.yaml"); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	css := cfg.Platforms["css"]
	if css.TransformGroup != "css/simple" || css.BuildPath != "src/tokens/" {
		t.Errorf("unexpected css platform %+v", css)
	}
	if css.Files[0].Options.Selector != ":root" {
		t.Errorf("expected :root selector, got %q", css.Files[0].Options.Selector)
	}
	if cfg.Platforms["js"].Files[0].Format != "javascript/tailwind-simple" {
		t.Errorf("unexpected js file %+v", cfg.Platforms["js"].Files[0])
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Source: []string{"tokens.json"},
		Schema: "v9",
		CDN:    "cloudflare",
		Platforms: map[string]*Platform{
			"web": {
				TransformGroup: "css/nope",
				Files: []FileSpec{
					{Format: "scss"},
					{Destination: "a.js", Format: "javascript/tailwind-simple", Options: FileOptions{Module: "amd"}},
				},
			},
		},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"v9", "cloudflare", "css/nope", "missing destination", "scss", "amd"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestExpandSources(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")
	cfg := &Config{Source: []string{"tokens/**/*.json", "tokens/brand/*.json", "/abs/literal.json", "https://cdn.example.com/tokens.json"}}

	paths, err := cfg.ExpandSources(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{
		"/project/tokens/brand/overrides.json",
		"/project/tokens/color/base.json",
		"/project/tokens/color/dark.json",
		"/project/tokens/spacing.json",
		"/abs/literal.json",
		"https://cdn.example.com/tokens.json",
	}
	if !slices.Equal(paths, expected) {
		t.Errorf("got %v, expected %v", paths, expected)
	}
}

func TestExpandSources_MissingDir(t *testing.T) {
	cfg := &Config{Source: []string{"nowhere/**/*.json"}}
	paths, err := cfg.ExpandSources(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestExpandSources_PackageSpecifiers(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@acme/tokens/tokens.json", `{}`, 0644)
	cfg := &Config{
		CDN: "jsdelivr",
		Source: []string{
			"npm:@acme/tokens/tokens.json",
			"npm:@other/tokens/all.json",
			"npm:@acme/tokens/tokens.json",
		},
	}

	paths, err := cfg.ExpandSources(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{
		"/project/node_modules/@acme/tokens/tokens.json",
		"https://cdn.jsdelivr.net/npm/@other/tokens/all.json",
	}
	if !slices.Equal(paths, expected) {
		t.Errorf("got %v, expected %v", paths, expected)
	}
}
