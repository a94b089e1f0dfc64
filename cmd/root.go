/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenwind.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenwind/cmd/build"
	"bennypowers.dev/tokenwind/cmd/list"
	"bennypowers.dev/tokenwind/cmd/validate"
	"bennypowers.dev/tokenwind/cmd/version"
	"bennypowers.dev/tokenwind/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenwind",
	Short: "Build CSS variables and Tailwind themes from design tokens",
	Long: `tokenwind reads design token files and writes CSS custom property sheets
and Tailwind theme objects, as configured in .config/tokenwind.yaml.

Every global flag can also be set through a TOKENWIND_ environment variable,
for example TOKENWIND_BRAND_PREFIX=brand.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (default: .config/tokenwind.{yaml,yml,json})")
	flags.String("brand-prefix", "", "Path segment marking brand override tokens")
	flags.BoolP("verbose", "v", false, "Log debug output")

	for _, name := range []string{"config", "brand-prefix", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("TOKENWIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
