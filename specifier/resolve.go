/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
)

// Resolve returns the location of a package specifier's file: the installed
// copy in the nearest node_modules at or above rootDir, or its CDN URL when
// the package is not installed. Local paths are returned unchanged.
func Resolve(filesystem fs.FileSystem, rootDir, spec string, cdn CDN) (string, error) {
	parsed := Parse(spec)
	if parsed.Kind == KindLocal {
		return spec, nil
	}
	if parsed.File == "" {
		return "", fmt.Errorf("%s: specifier names no file", spec)
	}

	if path, ok, err := findInstalled(filesystem, rootDir, parsed); err != nil {
		return "", err
	} else if ok {
		return path, nil
	}

	url, ok := CDNURL(spec, cdn)
	if !ok {
		return "", fmt.Errorf("package not found: %s (not installed, and %s does not serve it)", parsed.Package, cdnName(cdn))
	}
	logger.Debug("%s is not installed, using %s", spec, url)
	return url, nil
}

func findInstalled(filesystem fs.FileSystem, rootDir string, parsed *Specifier) (string, bool, error) {
	dir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
	}
	for {
		base := filepath.Join(dir, "node_modules")
		path := filepath.Join(base, parsed.ModuleDir(), parsed.File)
		if !isInsideDir(path, base) {
			return "", false, fmt.Errorf("path traversal detected in specifier: %s", parsed.Raw)
		}
		if filesystem.Exists(path) {
			return path, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func cdnName(cdn CDN) string {
	if cdn == "" {
		return string(CDNUnpkg)
	}
	return string(cdn)
}
