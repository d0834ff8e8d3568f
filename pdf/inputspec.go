// Package pdf is the codec layer: it opens input documents, serves page
// counts to the range engine and materializes assembled page sequences into
// output files through pdfcpu.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Input pairs a document handle with the file backing it.
type Input struct {
	Handle string
	Path   string
}

// FileNotFoundError reports an input path that does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("PDF file not found: %s", e.Path)
}

// NotPDFError reports an input path without a .pdf extension.
type NotPDFError struct {
	Path string
}

func (e *NotPDFError) Error() string {
	return fmt.Sprintf("file is not a PDF: %s", e.Path)
}

// ParseInputs splits CLI input arguments of the form HANDLE=path or a bare
// path. Handles are normalized to uppercase; bare paths are assigned the
// first free handle from A, B, C... in argument order. Every path is
// validated for existence and a .pdf extension before documents are opened.
func ParseInputs(args []string) ([]Input, error) {
	inputs := make([]Input, 0, len(args))
	taken := make(map[string]bool)

	for _, arg := range args {
		var in Input
		if i := strings.IndexByte(arg, '='); i >= 0 {
			handle := strings.ToUpper(arg[:i])
			if !validHandle(handle) {
				return nil, fmt.Errorf("invalid handle %q: handles are one or more letters", arg[:i])
			}
			in = Input{Handle: handle, Path: arg[i+1:]}
		} else {
			in = Input{Handle: nextFreeHandle(taken), Path: arg}
		}

		if taken[in.Handle] {
			return nil, fmt.Errorf("duplicate handle: %s", in.Handle)
		}
		taken[in.Handle] = true

		if err := ValidateInputFile(in.Path); err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// ValidateInputFile checks that path exists, is a regular file and carries a
// .pdf extension (case-insensitive).
func ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileNotFoundError{Path: path}
		}
		return err
	}
	if info.IsDir() {
		return &NotPDFError{Path: path}
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return &NotPDFError{Path: path}
	}
	return nil
}

func validHandle(handle string) bool {
	if handle == "" {
		return false
	}
	for i := 0; i < len(handle); i++ {
		if handle[i] < 'A' || handle[i] > 'Z' {
			return false
		}
	}
	return true
}

// nextFreeHandle picks the first unused single-letter handle.
func nextFreeHandle(taken map[string]bool) string {
	for c := 'A'; c <= 'Z'; c++ {
		h := string(c)
		if !taken[h] {
			return h
		}
	}
	// 26 bare inputs exhausted; fall back to double letters.
	for c := 'A'; c <= 'Z'; c++ {
		for d := 'A'; d <= 'Z'; d++ {
			h := string(c) + string(d)
			if !taken[h] {
				return h
			}
		}
	}
	return ""
}
