/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenwind.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	buildlib "bennypowers.dev/tokenwind/build"
	"bennypowers.dev/tokenwind/cmd/internal/settings"
	"bennypowers.dev/tokenwind/config"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate design token files",
	Long: `Validate the configured token sources: dialect consistency, colour values
and references. Also warns about tokens the nested Tailwind theme drops, base
tokens whose names collide and brand overrides with no base token.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	filesystem := fs.NewOSFileSystem()
	cfg, err := settings.LoadConfig(filesystem, ".")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sources, err := cfg.ExpandSources(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error expanding sources: %w", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w: %v", buildlib.ErrNoSources, cfg.Source)
	}

	hasErrors := false
	for _, file := range sources {
		if load.IsRemote(file) {
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}
		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(errOut, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}
		for _, e := range validator.ValidateConsistency(data, cfg.SchemaVersion(), file) {
			fmt.Fprintf(errOut, "error: %s\n", e.Error())
			hasErrors = true
		}
	}

	opts := buildlib.Options{
		Config:  cfg,
		Root:    ".",
		FS:      filesystem,
		Strict:  true,
		Fetcher: load.NewHTTPFetcher(),
	}
	tokens, err := buildlib.LoadTokens(cmd.Context(), opts)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return fmt.Errorf("validation failed")
	}

	warnings := 0
	for _, name := range cfg.PlatformNames() {
		transformed, err := buildlib.Transform(tokens, cfg.Platforms[name], cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: platform %s: %v\n", name, err)
			hasErrors = true
			continue
		}
		for _, w := range validator.CheckCoverage(transformed, cfg.FormatterOptions(config.FileSpec{})) {
			if !quiet {
				fmt.Fprintf(errOut, "warning: [%s] %s\n", name, w.Error())
			}
			warnings++
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	if strict && warnings > 0 {
		return fmt.Errorf("validation failed: %d warning(s)", warnings)
	}
	if !quiet {
		fmt.Fprintf(out, "%d tokens valid (%s).\n", len(tokens), dialects(cfg))
	}
	return nil
}

func dialects(cfg *config.Config) string {
	if v := cfg.SchemaVersion(); v != schema.Unknown {
		return v.String()
	}
	return "dialect detected per file"
}
