// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xiongbear2005/docx2md/internal/catalog"
	"github.com/xiongbear2005/docx2md/pkg/types"
)

// defaultCatalogPath is used when neither flag nor config names one.
const defaultCatalogPath = "docx2md.db"

// configString resolves a setting from its flag when set, then the
// config file or environment, then the built-in fallback.
func configString(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func configBool(cmd *cobra.Command, flag, key string, fallback bool) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return fallback
}

func configInt(cmd *cobra.Command, flag, key string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

// convertConfig assembles the conversion settings for a command that
// declares the shared conversion flags.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	return types.ConvertConfig{
		OutDir:                 configString(cmd, "out-dir", "out_dir", ""),
		ImageDir:               configString(cmd, "image-dir", "image_dir", "images"),
		Frontmatter:            configBool(cmd, "frontmatter", "frontmatter", false),
		DisplayLengthThreshold: configInt(cmd, "display-length-threshold", "display_length_threshold", 0),
	}
}

// addConvertFlags declares the conversion flags shared by convert and
// batch.
func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().String("out-dir", "", "directory for Markdown output (default: next to each source)")
	cmd.Flags().String("image-dir", "images", "directory for extracted images, relative to the output")
	cmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter with conversion statistics")
	cmd.Flags().Int("display-length-threshold", 0, "rendered length beyond which a formula becomes display math (0 = default)")
	cmd.Flags().String("catalog", "", "path to the conversion catalog database")
	cmd.Flags().Bool("no-catalog", false, "do not record outcomes in the conversion catalog")
}

// openCatalog opens the conversion catalog unless it is disabled by
// flag or configuration. A nil store with nil error means disabled.
func openCatalog(cmd *cobra.Command) (*catalog.Store, error) {
	if configBool(cmd, "no-catalog", "catalog.disabled", false) {
		return nil, nil
	}
	path := configString(cmd, "catalog", "catalog.path", defaultCatalogPath)
	return catalog.Open(path)
}
