// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiongbear2005/docx2md/internal/docx"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Convert every .docx document under a directory",
	Long: `Batch walks a directory tree, converts every .docx document it finds
and prints a per-file status plus a summary. Documents already recorded
in the catalog are skipped unless their modification time changed, so
repeated runs only convert new or edited documents.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	paths, err := collectDocx(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println("No .docx documents found.")
		return nil
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

	result := docx.ConvertBatch(paths, cfg, tracker, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

// collectDocx walks root for .docx documents, skipping Word lock files
// (the ~$ prefixed copies Word leaves while a document is open).
func collectDocx(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, "~$") {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(name), ".docx") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return paths, nil
}

func init() {
	addConvertFlags(batchCmd)

	rootCmd.AddCommand(batchCmd)
}
