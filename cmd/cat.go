package cmd

import (
	"fmt"

	"pdf_toolkit/pdf"

	"github.com/spf13/cobra"
)

var (
	catOutput   string
	catRanges   []string
	catOptimize bool
)

var catCmd = &cobra.Command{
	Use:   "cat INPUT...",
	Short: "Concatenate and merge PDFs with optional page ranges",
	Long: `Concatenate pages from one or more PDFs into a single output.

Inputs are plain paths or HANDLE=path pairs; plain paths are assigned
handles A, B, C... in order. Without ranges every page of every input is
merged.`,
	Example: `  pdftoolkit cat A=a.pdf B=b.pdf -o out.pdf -r A1-3 -r B5 -r B7
  pdftoolkit cat A=a.pdf B=b.pdf -o out.pdf -r "A1-10even B5-10odd"
  pdftoolkit cat A=a.pdf B=b.pdf -o merged.pdf
  pdftoolkit cat input.pdf -o output.pdf -r 1-5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := pdf.ParseInputs(args)
		if err != nil {
			return err
		}
		if err := pdf.Cat(inputs, catRanges, catOutput); err != nil {
			return err
		}
		if catOptimize {
			if err := pdf.Optimize(catOutput, catOutput); err != nil {
				return err
			}
		}
		fmt.Printf("Successfully created %s\n", catOutput)
		return nil
	},
}

func init() {
	catCmd.Flags().StringVarP(&catOutput, "output", "o", "", "output PDF file")
	catCmd.MarkFlagRequired("output")
	catCmd.Flags().StringArrayVarP(&catRanges, "ranges", "r", nil,
		"page ranges (e.g. 1-5, A1-10east, Bend-1odd); repeatable, omitted means merge everything")
	catCmd.Flags().BoolVar(&catOptimize, "optimize", false, "run a pdfcpu optimize pass on the output")
	rootCmd.AddCommand(catCmd)
}
