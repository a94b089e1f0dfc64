/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

// JSONParser parses JSON, JSONC and YAML token files in either the
// Style Dictionary or the DTCG dialect.
type JSONParser struct{}

// NewJSONParser creates a new token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ParseFile reads and parses a token file.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, t := range tokens {
		t.FilePath = path
	}
	return tokens, nil
}

// Parse parses token data and returns tokens in document order.
func (p *JSONParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	// JSON is parsed through yaml.v3 as well: the node tree keeps key order,
	// which map[string]any would lose.
	src := data
	if isLikelyJSON(data) {
		src = jsonc.ToJSON(data)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}

	result := []*token.Token{}
	if len(root.Content) == 0 {
		return result, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root must be an object", schema.ErrInvalidToken)
	}

	if err := p.extractTokens(doc, nil, "", opts, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM/comments).
func isLikelyJSON(data []byte) bool {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '/':
			return i+1 < len(data) && (data[i+1] == '/' || data[i+1] == '*')
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

type entry struct {
	key   string
	value *yaml.Node
}

// mappingEntries returns the key/value pairs of a mapping node.
func mappingEntries(node *yaml.Node, sorted bool) []entry {
	entries := make([]entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		entries = append(entries, entry{key: node.Content[i].Value, value: node.Content[i+1]})
	}
	if sorted {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	}
	return entries
}

// lookup returns the value node for key in a mapping node.
func lookup(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// scalar returns the string value of key when it holds a scalar.
func scalar(node *yaml.Node, key string) (string, bool) {
	v := lookup(node, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return "", false
	}
	return v.Value, true
}

// leafVersion reports the dialect of node if it is a token leaf.
func leafVersion(node *yaml.Node, forced schema.Version) (schema.Version, bool) {
	if lookup(node, "$value") != nil && forced != schema.Legacy {
		return schema.DTCG, true
	}
	if lookup(node, "value") != nil && forced != schema.DTCG {
		return schema.Legacy, true
	}
	return schema.Unknown, false
}

// extractTokens recursively extracts tokens from a mapping node.
// inheritedType is passed down from parent groups for type inheritance.
func (p *JSONParser) extractTokens(node *yaml.Node, path []string, inheritedType string, opts Options, result *[]*token.Token) error {
	currentType := inheritedType
	if groupType, ok := scalar(node, "$type"); ok {
		currentType = groupType
	} else if groupType, ok := scalar(node, "type"); ok && opts.SchemaVersion != schema.DTCG {
		currentType = groupType
	}

	for _, e := range mappingEntries(node, opts.Sort) {
		if strings.HasPrefix(e.key, "$") || e.value.Kind != yaml.MappingNode {
			continue
		}

		// Clip so siblings never share a backing array.
		currentPath := slices.Clip(append(path, e.key))

		version, isLeaf := leafVersion(e.value, opts.SchemaVersion)
		if !isLeaf {
			if err := p.extractTokens(e.value, currentPath, currentType, opts, result); err != nil {
				return err
			}
			continue
		}

		t, err := p.createToken(e.value, currentPath, version, currentType)
		if err != nil {
			return err
		}
		*result = append(*result, t)
	}
	return nil
}

// createToken creates a Token from a leaf node.
func (p *JSONParser) createToken(node *yaml.Node, path []string, version schema.Version, inheritedType string) (*token.Token, error) {
	valueNode := lookup(node, version.ValueKey())

	var raw any
	if err := valueNode.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w at %s: %v", schema.ErrInvalidToken, strings.Join(path, "."), err)
	}
	raw = normalizeMap(raw)

	t := &token.Token{
		Name:          strings.Join(path, "-"),
		Value:         token.Stringify(raw),
		Path:          path,
		SchemaVersion: version,
		RawValue:      raw,
		Type:          inheritedType,
	}

	// A token's own type takes precedence over the inherited one.
	if typ, ok := scalar(node, version.TypeKey()); ok {
		t.Type = typ
	}
	if desc, ok := scalar(node, version.DescriptionKey()); ok {
		t.Description = desc
	}

	return t, nil
}

// normalizeMap recursively converts map[any]any to map[string]any.
// YAML with numeric keys (like "100:") creates map[any]any,
// which must be normalized for string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
