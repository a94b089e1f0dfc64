/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js renders theme objects as JavaScript modules.
// It supports ESM and CommonJS module systems.
package js

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenwind/convert/formatter"
	"bennypowers.dev/tokenwind/internal/ordered"
)

// Module specifies the JavaScript module system.
type Module string

const (
	// ModuleESM uses ES Modules (default).
	ModuleESM Module = "esm"
	// ModuleCJS uses CommonJS.
	ModuleCJS Module = "cjs"
)

// Indent is the indentation of serialized objects.
const Indent = "    "

// ParseModule converts a string to a Module. Empty means ModuleESM.
func ParseModule(s string) (Module, error) {
	switch strings.ToLower(s) {
	case "", "esm", "module":
		return ModuleESM, nil
	case "cjs", "commonjs":
		return ModuleCJS, nil
	default:
		return "", fmt.Errorf("unknown module system: %s (valid: esm, cjs)", s)
	}
}

// Export is a named object exported from a module.
type Export struct {
	Name  string
	Value *ordered.Object
}

// Render writes exports as a module headed by the generated-file notice.
// Exports are separated by a blank line. The result has no trailing newline.
func Render(module Module, exports ...Export) ([]byte, error) {
	var b strings.Builder
	b.WriteString(formatter.FormatHeader(formatter.GeneratedNotice, formatter.LineComments))

	names := make([]string, 0, len(exports))
	for i, exp := range exports {
		data, err := ordered.MarshalIndent(exp.Value, Indent)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize %s: %w", exp.Name, err)
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		if module == ModuleCJS {
			b.WriteString("const ")
		} else {
			b.WriteString("export const ")
		}
		fmt.Fprintf(&b, "%s = %s;", exp.Name, data)
		names = append(names, exp.Name)
	}

	if module == ModuleCJS {
		fmt.Fprintf(&b, "\n\nmodule.exports = { %s };", strings.Join(names, ", "))
	}
	return []byte(b.String()), nil
}
