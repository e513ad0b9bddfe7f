// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiongbear2005/docx2md/internal/docx"
	"github.com/xiongbear2005/docx2md/internal/omml"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show the OMML structure and LaTeX of a document's formulas",
	Long: `Inspect lists every math formula in a document: its OMML element
structure as an indented outline, and the LaTeX it converts to. Use
--index to narrow the output to a single formula when debugging a
conversion.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	index, _ := cmd.Flags().GetInt("index")

	doc, err := docx.Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	formulas := doc.Formulas()
	if len(formulas) == 0 {
		fmt.Println("No formulas found.")
		return nil
	}
	if index > len(formulas) {
		return fmt.Errorf("formula index %d out of range: document has %d formula(s)", index, len(formulas))
	}

	conv := omml.NewConverter()
	for i, el := range formulas {
		if index > 0 && i+1 != index {
			continue
		}
		f := conv.ConvertFormula(el)
		kind := "inline"
		if f.IsDisplay {
			kind = "display"
		}
		if f.RawFallbackUsed {
			kind = "unconverted"
		}
		fmt.Printf("Formula %d (%s):\n", i+1, kind)
		fmt.Println(docx.Outline(el))
		fmt.Printf("LaTeX: %s\n\n", f.LaTeX)
	}

	if index == 0 {
		fmt.Printf("%d formula(s)\n", len(formulas))
	}
	return nil
}

func init() {
	inspectCmd.Flags().Int("index", 0, "inspect only the Nth formula (1-based)")

	rootCmd.AddCommand(inspectCmd)
}
