package cmd

import (
	"fmt"

	"pdf_toolkit/pdf"

	"github.com/spf13/cobra"
)

var (
	burstPattern string
	burstDir     string
)

var burstCmd = &cobra.Command{
	Use:   "burst INPUT",
	Short: "Split a PDF into individual page files",
	Example: `  pdftoolkit burst document.pdf
  pdftoolkit burst document.pdf -p "page_%02d.pdf" -d out/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := pdf.Burst(args[0], burstPattern, burstDir)
		if err != nil {
			return err
		}
		for _, f := range written {
			fmt.Printf("Created: %s\n", f)
		}
		fmt.Printf("Successfully split %d pages from %s\n", len(written), args[0])
		return nil
	},
}

func init() {
	burstCmd.Flags().StringVarP(&burstPattern, "pattern", "p", pdf.DefaultBurstPattern,
		"printf-style output filename pattern")
	burstCmd.Flags().StringVarP(&burstDir, "dir", "d", ".", "output directory")
	rootCmd.AddCommand(burstCmd)
}
