package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DefaultBurstPattern is the printf-style filename pattern burst uses when
// the caller does not supply one.
const DefaultBurstPattern = "pg_%04d.pdf"

// Burst splits the input into one file per page, named by applying the
// printf-style pattern to the 1-based page number, creating outDir if
// needed. It returns the written file paths in page order.
func Burst(inPath, pattern, outDir string) ([]string, error) {
	if err := ValidateInputFile(inPath); err != nil {
		return nil, err
	}
	if pattern == "" {
		pattern = DefaultBurstPattern
	}

	total, err := api.PageCountFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inPath, err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	conf := newConfiguration()
	written := make([]string, 0, total)
	for p := 1; p <= total; p++ {
		outFile := filepath.Join(outDir, fmt.Sprintf(pattern, p))
		if err := api.TrimFile(inPath, outFile, []string{strconv.Itoa(p)}, conf); err != nil {
			return nil, fmt.Errorf("write page %d: %w", p, err)
		}
		written = append(written, outFile)
	}
	return written, nil
}
