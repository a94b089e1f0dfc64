/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenwind.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	buildlib "bennypowers.dev/tokenwind/build"
	"bennypowers.dev/tokenwind/cmd/internal/settings"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens as a platform transforms them",
	Long: `List every loaded token with the name and value a platform's transforms
produce. Uses the first configured platform unless --platform is given.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("platform", "p", "", "Platform whose transforms to apply")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("group", "", "Filter by top-level group")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	platform, _ := cmd.Flags().GetString("platform")
	typeFilter, _ := cmd.Flags().GetString("type")
	groupFilter, _ := cmd.Flags().GetString("group")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	cfg, err := settings.LoadConfig(filesystem, ".")
	if err != nil {
		return err
	}

	var requested []string
	if platform != "" {
		requested = []string{platform}
	}
	platforms, err := buildlib.SelectPlatforms(cfg, requested)
	if err != nil {
		return err
	}
	if len(platforms) == 0 {
		return fmt.Errorf("no platforms configured")
	}

	opts := buildlib.Options{
		Config:  cfg,
		Root:    ".",
		FS:      filesystem,
		Fetcher: load.NewHTTPFetcher(),
	}
	tokens, err := buildlib.LoadTokens(cmd.Context(), opts)
	if err != nil {
		return err
	}
	tokens, err = buildlib.Transform(tokens, cfg.Platforms[platforms[0]], cfg)
	if err != nil {
		return err
	}

	tokens = filterTokens(tokens, typeFilter, groupFilter)
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Name < tokens[j].Name
	})

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), tokens)
	case "table", "":
		return outputTable(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown format %q (expected table or json)", format)
	}
}

// filterTokens keeps the tokens matching every non-empty filter.
func filterTokens(tokens []*token.Token, typeFilter, group string) []*token.Token {
	result := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if typeFilter != "" && tok.Type != typeFilter {
			continue
		}
		if group != "" && (len(tok.Path) == 0 || tok.Path[0] != group) {
			continue
		}
		result = append(result, tok)
	}
	return result
}

func outputTable(w io.Writer, tokens []*token.Token) error {
	for _, tok := range tokens {
		typeStr := tok.Type
		if typeStr == "" {
			typeStr = "-"
		}
		if _, err := fmt.Fprintf(w, "%-40s %-12s %s\n", tok.Name, typeStr, tok.Value); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, tokens []*token.Token) error {
	type tokenOutput struct {
		Name        string   `json:"name"`
		Value       string   `json:"value"`
		Type        string   `json:"type,omitempty"`
		Path        []string `json:"path"`
		Description string   `json:"description,omitempty"`
	}

	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput{
			Name:        tok.Name,
			Value:       tok.Value,
			Type:        tok.Type,
			Path:        tok.Path,
			Description: tok.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
