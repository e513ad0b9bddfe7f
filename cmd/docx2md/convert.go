// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiongbear2005/docx2md/internal/docx"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert .docx files to Markdown",
	Long: `Convert transforms .docx documents into Markdown files. OMML formulas
become LaTeX math, embedded images are extracted next to the output,
and tables become pipe tables. Formulas that cannot be converted
degrade to a placeholder instead of failing the document.

By default each Markdown file is written next to its source; use
--out-dir to collect output elsewhere, or --output for a single file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "" && len(args) != 1 {
		return fmt.Errorf("--output requires exactly one input file")
	}

	cfg := convertConfig(cmd)

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	var tracker docx.Tracker
	if store != nil {
		defer store.Close()
		tracker = store
	}

	if output != "" {
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		res, err := docx.ConvertFile(args[0], output, cfg, os.Stdout)
		if err != nil {
			return err
		}
		docx.RecordOutcome(tracker, args[0], info.ModTime(), res, os.Stdout)
		return nil
	}

	result := docx.ConvertBatch(args, cfg, tracker, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output path (single input file only)")
	addConvertFlags(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
