// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docx2md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docx2md CLI.
var rootCmd = &cobra.Command{
	Use:   "docx2md",
	Short: "Convert Word documents to Markdown with LaTeX math",
	Long: `docx2md converts .docx documents into Markdown. Embedded Office Math
(OMML) formulas become LaTeX, inline or display depending on their
structure; images are extracted next to the output and tables become
pipe tables. A local catalog remembers outcomes so batch runs skip
documents that have not changed.

Each operation is a subcommand: convert, batch, catalog, and inspect.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docx2md.yaml or ~/.config/docx2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docx2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docx2md"))
		}
	}

	viper.SetEnvPrefix("DOCX2MD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
