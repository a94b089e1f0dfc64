/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"

	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

// ResolveAliases resolves all {path} references in the token list.
// Updates Value, ResolvedValue and IsResolved on each token.
// Broken references are logged and left in place; they are returned
// together as a single ErrUnresolvedReference error only when strict is set.
func ResolveAliases(tokens []*token.Token, strict bool) error {
	graph := BuildDependencyGraph(tokens)

	sortedPaths, err := graph.TopologicalSort()
	if err != nil {
		return err
	}

	tokenByPath := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		tokenByPath[tok.DotPath()] = tok
	}

	var missing []string
	for _, path := range sortedPaths {
		tok := tokenByPath[path]
		if tok == nil {
			// Dependency on a token that does not exist
			continue
		}
		missing = append(missing, resolveToken(tok, tokenByPath)...)
	}

	if len(missing) > 0 && strict {
		return fmt.Errorf("%w: %v", schema.ErrUnresolvedReference, missing)
	}
	return nil
}

// resolveToken resolves one token whose dependencies are already resolved.
// Returns the references that could not be found.
func resolveToken(tok *token.Token, tokenByPath map[string]*token.Token) []string {
	if tok.IsResolved {
		return nil
	}
	tok.IsResolved = true

	if !token.IsCurlyBraceRef(tok.Value) {
		if tok.RawValue != nil {
			tok.ResolvedValue = tok.RawValue
		} else {
			tok.ResolvedValue = tok.Value
		}
		return nil
	}

	// A whole-value reference keeps the referenced value's type.
	if token.IsWholeRef(tok.Value) {
		ref, _ := token.ParseCurlyBraceRef(tok.Value)
		target := tokenByPath[ref]
		if target == nil || !target.IsResolved {
			logger.Warn("%s: unresolved reference {%s}", tok.DotPath(), ref)
			tok.ResolvedValue = tok.Value
			return []string{ref}
		}
		tok.ResolvedValue = target.ResolvedValue
		tok.Value = token.Stringify(target.ResolvedValue)
		if tok.Type == "" {
			tok.Type = target.Type
		}
		return nil
	}

	var missing []string
	resolved := token.ReplaceRefs(tok.Value, func(ref string) string {
		target := tokenByPath[ref]
		if target == nil || !target.IsResolved {
			logger.Warn("%s: unresolved reference {%s}", tok.DotPath(), ref)
			missing = append(missing, ref)
			return "{" + ref + "}"
		}
		return token.Stringify(target.ResolvedValue)
	})
	tok.Value = resolved
	tok.ResolvedValue = resolved
	return missing
}
