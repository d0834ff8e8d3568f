package cmd

import (
	"fmt"

	"pdf_toolkit/pdf"

	"github.com/spf13/cobra"
)

var (
	shuffleOutput   string
	shuffleRanges   []string
	shuffleOptimize bool
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle INPUT...",
	Short: "Collate pages from multiple PDFs in round-robin fashion",
	Long: `Interleave the ranges' pages one at a time across their source
documents. Every range must name a handle; when a source runs out the
remaining sources keep interleaving.`,
	Example: `  pdftoolkit shuffle A=odd.pdf B=even.pdf -o book.pdf -r A B
  pdftoolkit shuffle A=a.pdf B=b.pdf -o out.pdf -r A1-5 -r B5-1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := pdf.ParseInputs(args)
		if err != nil {
			return err
		}
		if err := pdf.Shuffle(inputs, shuffleRanges, shuffleOutput); err != nil {
			return err
		}
		if shuffleOptimize {
			if err := pdf.Optimize(shuffleOutput, shuffleOutput); err != nil {
				return err
			}
		}
		fmt.Printf("Successfully created %s\n", shuffleOutput)
		return nil
	},
}

func init() {
	shuffleCmd.Flags().StringVarP(&shuffleOutput, "output", "o", "", "output PDF file")
	shuffleCmd.MarkFlagRequired("output")
	shuffleCmd.Flags().StringArrayVarP(&shuffleRanges, "ranges", "r", nil,
		"page ranges to shuffle (e.g. A1-10 B1-10); repeatable")
	shuffleCmd.MarkFlagRequired("ranges")
	shuffleCmd.Flags().BoolVar(&shuffleOptimize, "optimize", false, "run a pdfcpu optimize pass on the output")
	rootCmd.AddCommand(shuffleCmd)
}
