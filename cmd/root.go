// Package cmd implements the CLI commands for pdf_toolkit using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdftoolkit",
	Short: "pdftoolkit — split, merge, rotate and collate PDF pages",
	Long: `pdftoolkit manipulates PDF documents at the page level using a
pdftk-style page-range language.

Ranges are space-separated tokens like "1-5", "A1-10east" or "Bend-1odd":
an optional document handle, a page range (with end, r<N> and rend
keywords), an optional even/odd qualifier and an optional rotation
keyword (north, east, south, west, left, right, down).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
