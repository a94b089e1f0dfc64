/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tokenwind.
package build

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	buildlib "bennypowers.dev/tokenwind/build"
	"bennypowers.dev/tokenwind/cmd/internal/settings"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/load"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Generate CSS and Tailwind outputs from design tokens",
	Long: `Load the configured token sources and write every output file of the
configured platforms.

Examples:
  # Build every platform
  tokenwind build

  # Build only the css platform
  tokenwind build --platform css

  # Rebuild when a token file changes
  tokenwind build --watch`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringSliceP("platform", "p", nil, "Platforms to build (default: all)")
	Cmd.Flags().BoolP("watch", "w", false, "Rebuild when token sources change")
	Cmd.Flags().Bool("strict", false, "Fail on unresolved references")
	Cmd.Flags().Duration("debounce", buildlib.DefaultDebounce, "Quiet period before a watch rebuild")
}

func run(cmd *cobra.Command, args []string) error {
	platforms, _ := cmd.Flags().GetStringSlice("platform")
	watch, _ := cmd.Flags().GetBool("watch")
	strict, _ := cmd.Flags().GetBool("strict")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	filesystem := fs.NewOSFileSystem()
	cfg, err := settings.LoadConfig(filesystem, ".")
	if err != nil {
		return err
	}

	opts := buildlib.Options{
		Config:    cfg,
		Root:      ".",
		FS:        filesystem,
		Platforms: platforms,
		Strict:    strict,
		Fetcher:   load.NewHTTPFetcher(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		logger.Info("Watching token sources, press Ctrl+C to stop")
		return buildlib.Watch(ctx, opts, debounce, func(result *buildlib.Result, err error) {
			if err != nil {
				logger.Error("build failed: %v", err)
				return
			}
			report(cmd, result)
		})
	}

	result, err := buildlib.Run(ctx, opts)
	if result != nil {
		report(cmd, result)
	}
	return err
}

func report(cmd *cobra.Command, result *buildlib.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "Built %d file(s) from %d token(s)\n", len(result.Written), result.Tokens)
}
