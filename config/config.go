/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokenwind builds.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenwind/convert"
	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/convert/formatter/js"
	"bennypowers.dev/tokenwind/parser"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/specifier"
	"bennypowers.dev/tokenwind/transform"
)

// Config represents the tokenwind build configuration.
type Config struct {
	// Source lists token files to load (paths or doublestar globs).
	Source []string `yaml:"source" json:"source"`

	// BrandPrefix is the leading path segment marking override tokens.
	BrandPrefix string `yaml:"brandPrefix" json:"brandPrefix"`

	// DarkModeMarker is the path segment excluding tokens from theme objects.
	DarkModeMarker string `yaml:"darkModeMarker" json:"darkModeMarker"`

	// CDN serves npm:/jsr: sources that are not installed. Defaults to unpkg.
	// Valid values: "unpkg", "esm.sh", "esm.run", "jspm", "jsdelivr"
	CDN string `yaml:"cdn" json:"cdn"`

	// Schema forces a token dialect (optional).
	// Valid values: "legacy", "dtcg"
	Schema string `yaml:"schema" json:"schema"`

	// Platforms maps a platform name to its outputs.
	Platforms map[string]*Platform `yaml:"platforms" json:"platforms"`
}

// Platform is a set of output files sharing one transform pipeline.
type Platform struct {
	// TransformGroup names a registered transform group.
	TransformGroup string `yaml:"transformGroup" json:"transformGroup"`

	// Transforms are extra transform names run after the group's.
	Transforms []string `yaml:"transforms" json:"transforms"`

	// BuildPath is the output directory, relative to the project root.
	BuildPath string `yaml:"buildPath" json:"buildPath"`

	// Files are the outputs of this platform.
	Files []FileSpec `yaml:"files" json:"files"`
}

// FileSpec represents one output file.
// It can be given as an object or as a "format:destination" string.
type FileSpec struct {
	Destination string      `yaml:"destination" json:"destination"`
	Format      string      `yaml:"format" json:"format"`
	Options     FileOptions `yaml:"options" json:"options"`
}

// FileOptions are per-file formatter options.
type FileOptions struct {
	// Selector wraps CSS declarations.
	Selector string `yaml:"selector" json:"selector"`

	// Module is the JavaScript module system: "esm" or "cjs".
	Module string `yaml:"module" json:"module"`

	// SemanticNames are the colour groups of a Tailwind @theme block.
	SemanticNames []string `yaml:"semanticNames" json:"semanticNames"`
}

// parseShorthand fills f from a "format:destination" string.
func (f *FileSpec) parseShorthand(s string) error {
	format, destination, ok := strings.Cut(s, ":")
	if !ok || format == "" || destination == "" {
		return fmt.Errorf("invalid file spec %q: expected format:destination", s)
	}
	f.Format = format
	f.Destination = destination
	return nil
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return f.parseShorthand(node.Value)
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return f.parseShorthand(s)
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns the stock configuration: CSS variables and a Tailwind
// @theme block for the css platform, a flat Tailwind module for js.
func Default() *Config {
	return &Config{
		Source:         []string{"tokens/**/*.json"},
		DarkModeMarker: formatter.DefaultDarkModeMarker,
		Platforms: map[string]*Platform{
			"css": {
				TransformGroup: "css/simple",
				BuildPath:      "src/tokens/",
				Files: []FileSpec{
					{
						Destination: "design-tokens.css",
						Format:      string(convert.FormatCSSVariables),
						Options:     FileOptions{Selector: formatter.DefaultSelector},
					},
					{
						Destination: "theme.css",
						Format:      string(convert.FormatCSSTailwindTheme),
					},
				},
			},
			"js": {
				TransformGroup: "css/simple",
				BuildPath:      "src/tokens/",
				Files: []FileSpec{
					{
						Destination: "design-tokens.js",
						Format:      string(convert.FormatTailwindSimple),
					},
				},
			},
		},
	}
}

// SchemaVersion returns the parsed schema version from the Schema field.
// Returns schema.Unknown if the field is empty or invalid.
func (c *Config) SchemaVersion() schema.Version {
	if c.Schema == "" {
		return schema.Unknown
	}
	v, err := schema.FromString(c.Schema)
	if err != nil {
		return schema.Unknown
	}
	return v
}

// ParserOptions returns parser.Options with configuration applied.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{SchemaVersion: c.SchemaVersion()}
}

// PlatformNames returns the configured platform names, sorted.
func (c *Config) PlatformNames() []string {
	names := make([]string, 0, len(c.Platforms))
	for name := range c.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TransformOptions returns the transform options for this config.
func (c *Config) TransformOptions() transform.Options {
	return transform.Options{BrandPrefix: c.BrandPrefix}
}

// FormatterOptions returns formatter options for one output file.
func (c *Config) FormatterOptions(spec FileSpec) formatter.Options {
	return formatter.Options{
		Selector:       spec.Options.Selector,
		BrandPrefix:    c.BrandPrefix,
		DarkModeMarker: c.DarkModeMarker,
		Module:         spec.Options.Module,
		SemanticNames:  spec.Options.SemanticNames,
	}
}

// Validate reports every problem in the configuration.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Source) == 0 {
		errs = append(errs, errors.New("no token sources configured"))
	}
	if c.Schema != "" {
		if _, err := schema.FromString(c.Schema); err != nil {
			errs = append(errs, err)
		}
	}
	if c.CDN != "" {
		if _, err := specifier.ParseCDN(c.CDN); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Platforms) == 0 {
		errs = append(errs, errors.New("no platforms configured"))
	}
	for _, name := range c.PlatformNames() {
		p := c.Platforms[name]
		if p == nil {
			errs = append(errs, fmt.Errorf("platform %s: empty", name))
			continue
		}
		if _, err := transform.Resolve(p.TransformGroup, p.Transforms); err != nil {
			errs = append(errs, fmt.Errorf("platform %s: %w", name, err))
		}
		if len(p.Files) == 0 {
			errs = append(errs, fmt.Errorf("platform %s: no files", name))
		}
		for i, f := range p.Files {
			if f.Destination == "" {
				errs = append(errs, fmt.Errorf("platform %s: file %d: missing destination", name, i))
			}
			if _, err := convert.ParseFormat(f.Format); err != nil {
				errs = append(errs, fmt.Errorf("platform %s: file %d: %w", name, i, err))
			}
			if _, err := js.ParseModule(f.Options.Module); err != nil {
				errs = append(errs, fmt.Errorf("platform %s: file %d: %w", name, i, err))
			}
		}
	}
	return errors.Join(errs...)
}
