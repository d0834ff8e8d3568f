package cmd

import (
	"fmt"

	"pdf_toolkit/pdf"

	"github.com/spf13/cobra"
)

var (
	rotateOutput   string
	rotateRanges   []string
	rotateOptimize bool
)

var rotateCmd = &cobra.Command{
	Use:   "rotate INPUT",
	Short: "Rotate specific pages in a PDF",
	Long: `Rotate the pages selected by the ranges, leaving every page in place:
the output has the same page count and order as the input, only the
selected pages carry a new rotation.`,
	Example: `  pdftoolkit rotate in.pdf -o out.pdf -r 1east
  pdftoolkit rotate in.pdf -o out.pdf -r "1-3east 7-9west"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pdf.Rotate(args[0], rotateRanges, rotateOutput); err != nil {
			return err
		}
		if rotateOptimize {
			if err := pdf.Optimize(rotateOutput, rotateOutput); err != nil {
				return err
			}
		}
		fmt.Printf("Successfully created %s\n", rotateOutput)
		return nil
	},
}

func init() {
	rotateCmd.Flags().StringVarP(&rotateOutput, "output", "o", "", "output PDF file")
	rotateCmd.MarkFlagRequired("output")
	rotateCmd.Flags().StringArrayVarP(&rotateRanges, "ranges", "r", nil,
		"page ranges with rotation (e.g. 1east, 5-10south); repeatable")
	rotateCmd.MarkFlagRequired("ranges")
	rotateCmd.Flags().BoolVar(&rotateOptimize, "optimize", false, "run a pdfcpu optimize pass on the output")
	rootCmd.AddCommand(rotateCmd)
}
