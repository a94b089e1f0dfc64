/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves {path} references between tokens.
package resolver

import (
	"fmt"
	"slices"

	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

// DependencyGraph maps each token's dot path to the paths it references.
// References to paths no token defines are kept as leaf nodes.
type DependencyGraph struct {
	edges map[string][]string
	nodes []string
}

// BuildDependencyGraph builds the reference graph of tokens, in token order.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	g := &DependencyGraph{
		edges: make(map[string][]string, len(tokens)),
		nodes: make([]string, 0, len(tokens)),
	}
	for _, tok := range tokens {
		node := tok.DotPath()
		g.nodes = append(g.nodes, node)
		if refs := token.ExtractAllRefs(tok.Value); len(refs) > 0 {
			g.edges[node] = refs
		}
	}
	return g
}

// Dependencies returns the paths the token at path references.
func (g *DependencyGraph) Dependencies(path string) []string {
	return slices.Clone(g.edges[path])
}

type mark uint8

const (
	unvisited mark = iota
	visiting
	done
)

// walk visits nodes depth-first, appending each after its dependencies.
// It stops at the first back edge and returns the closed cycle.
func (g *DependencyGraph) walk() (order, cycle []string) {
	marks := make(map[string]mark, len(g.nodes))
	var stack []string

	var visit func(node string) []string
	visit = func(node string) []string {
		switch marks[node] {
		case done:
			return nil
		case visiting:
			start := slices.Index(stack, node)
			return append(slices.Clone(stack[start:]), node)
		}
		marks[node] = visiting
		stack = append(stack, node)
		for _, dep := range g.edges[node] {
			if c := visit(dep); c != nil {
				return c
			}
		}
		stack = stack[:len(stack)-1]
		marks[node] = done
		order = append(order, node)
		return nil
	}

	for _, node := range g.nodes {
		if c := visit(node); c != nil {
			return nil, c
		}
	}
	return order, nil
}

// FindCycle returns a reference cycle as a closed path (first == last),
// or nil.
func (g *DependencyGraph) FindCycle() []string {
	_, cycle := g.walk()
	return cycle
}

// TopologicalSort returns paths with every dependency before its dependents.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	order, cycle := g.walk()
	if cycle != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrCircularReference, cycle)
	}
	return order, nil
}
