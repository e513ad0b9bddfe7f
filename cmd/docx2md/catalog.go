// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiongbear2005/docx2md/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the conversion catalog",
	Long: `Catalog reads the local SQLite database that records conversion
outcomes. Use subcommands to list recorded documents or to aggregate
their statistics.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded documents and their conversion outcomes",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := openCatalogForReading(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.List()
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-44s  %-9s  %7s  %7s  %6s  %-19s\n",
		"Path", "Status", "Inline", "Display", "Images", "Converted")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 102))

	for _, rec := range recs {
		path := rec.Path
		if len(path) > 44 {
			path = "..." + path[len(path)-41:]
		}
		fmt.Fprintf(os.Stdout, "%-44s  %-9s  %7d  %7d  %6d  %-19s\n",
			path, rec.Status,
			rec.Stats.InlineCount, rec.Stats.DisplayCount, rec.Stats.ImageCount,
			rec.ConvertedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(os.Stdout, "\n%d documents\n", len(recs))
	return nil
}

// --- stats subcommand ---

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate conversion statistics across the catalog",
	RunE:  runCatalogStats,
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	store, err := openCatalogForReading(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	sum, err := store.Stats()
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}

	fmt.Printf("Documents: %d (%d converted, %d partial, %d failed)\n",
		sum.Documents, sum.Converted, sum.Partial, sum.Failed)
	fmt.Printf("Formulas:  %d inline, %d display, %d placeholders\n",
		sum.InlineTotal, sum.DisplayTotal, sum.PlaceholderTotal)
	fmt.Printf("Images:    %d\n", sum.ImageTotal)
	return nil
}

// openCatalogForReading opens the catalog regardless of the disabled
// setting; reading an existing catalog is always allowed.
func openCatalogForReading(cmd *cobra.Command) (*catalog.Store, error) {
	path := configString(cmd, "catalog", "catalog.path", defaultCatalogPath)
	return catalog.Open(path)
}

func init() {
	catalogCmd.PersistentFlags().String("catalog", "", "path to the conversion catalog database")
	catalogListCmd.Flags().Bool("json", false, "output records as JSON")
	catalogStatsCmd.Flags().Bool("json", false, "output statistics as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogStatsCmd)

	rootCmd.AddCommand(catalogCmd)
}
