package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Optimize rewrites a finished PDF through pdfcpu's optimizer, pruning
// unused objects and deduplicating resources.
func Optimize(inFile, outFile string) error {
	if err := api.OptimizeFile(inFile, outFile, newConfiguration()); err != nil {
		return fmt.Errorf("optimize %s: %w", inFile, err)
	}
	return nil
}
