/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	twfs "bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/specifier"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenwind"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Find returns the path of the first config file under rootDir, or "".
func Find(filesystem twfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(configPath) {
			return configPath
		}
	}
	return ""
}

// Load searches for .config/tokenwind.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem twfs.FileSystem, rootDir string) (*Config, error) {
	configPath := Find(filesystem, rootDir)
	if configPath == "" {
		return nil, nil
	}
	return LoadFile(filesystem, configPath)
}

// LoadFile reads a config file. JSON files may contain comments and
// trailing commas.
func LoadFile(filesystem twfs.FileSystem, configPath string) (*Config, error) {
	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	}
	return cfg, nil
}

// LoadOrDefault returns the config under rootDir, or Default when none exists.
func LoadOrDefault(filesystem twfs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}

// Resolve loads configPath when given, otherwise the config under rootDir,
// otherwise Default.
func Resolve(filesystem twfs.FileSystem, rootDir, configPath string) (*Config, error) {
	if configPath != "" {
		return LoadFile(filesystem, configPath)
	}
	return LoadOrDefault(filesystem, rootDir)
}

// ExpandSources expands glob patterns in Source and returns absolute paths.
// http(s) URLs are passed through unchanged. npm: and jsr: specifiers become
// the installed file under node_modules, or a CDN URL.
// A file matched by more than one pattern is listed once, at its first match.
func (c *Config) ExpandSources(filesystem twfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, pattern := range c.Source {
		if specifier.IsPackage(pattern) {
			resolved, err := specifier.Resolve(filesystem, rootDir, pattern, specifier.CDN(c.CDN))
			if err != nil {
				return nil, err
			}
			if !seen[resolved] {
				seen[resolved] = true
				result = append(result, resolved)
			}
			continue
		}
		expanded, err := expandSourcePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
		}
		for _, path := range expanded {
			if seen[path] {
				continue
			}
			seen[path] = true
			result = append(result, path)
		}
	}

	return result, nil
}

// expandSourcePath expands a single source path which may contain globs.
func expandSourcePath(filesystem twfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if load.IsRemote(pattern) {
		return []string{pattern}, nil
	}

	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// errors surface when the file is read
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and returns matching files
// in lexical order.
func expandGlob(filesystem twfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}
	relPattern := strings.TrimPrefix(strings.TrimPrefix(pattern, baseDir), string(filepath.Separator))

	if !doublestar.ValidatePattern(filepath.ToSlash(relPattern)) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// a missing or unreadable directory matches nothing
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(strings.TrimPrefix(path, baseDir), string(filepath.Separator))
		if matched, _ := doublestar.Match(filepath.ToSlash(relPattern), filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
