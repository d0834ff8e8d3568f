package pdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"pdf_toolkit/pages"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrNothingToWrite is returned when an operation resolves to zero pages.
var ErrNothingToWrite = errors.New("resolved page sequence is empty, nothing to write")

// run groups consecutive refs sharing a source document and rotation, so
// each run maps to a single pdfcpu collect call.
type run struct {
	handle   string
	rotation int
	pageList []int
}

func groupRuns(seq []pages.Ref) []run {
	var runs []run
	for _, ref := range seq {
		last := len(runs) - 1
		if last >= 0 && runs[last].handle == ref.Handle && runs[last].rotation == ref.Rotation {
			runs[last].pageList = append(runs[last].pageList, ref.Page)
			continue
		}
		runs = append(runs, run{handle: ref.Handle, rotation: ref.Rotation, pageList: []int{ref.Page}})
	}
	return runs
}

// WriteSequence materializes the assembled sequence into outPath. The whole
// sequence is bounds-checked first, each run is collected (and rotated) into
// a part file in a temp workspace, and the parts are merged in order; a
// failure at any step leaves no output file behind.
func WriteSequence(reg *Registry, seq []pages.Ref, outPath string) error {
	if len(seq) == 0 {
		return ErrNothingToWrite
	}
	if err := reg.CheckSequence(seq); err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "pdf_toolkit-*")
	if err != nil {
		return fmt.Errorf("create temp workspace: %w", err)
	}
	defer os.RemoveAll(workDir)

	conf := newConfiguration()
	runs := groupRuns(seq)
	parts := make([]string, 0, len(runs))

	for i, run := range runs {
		src, err := reg.Path(run.handle)
		if err != nil {
			return err
		}
		part := filepath.Join(workDir, fmt.Sprintf("part_%04d.pdf", i))

		if err := api.CollectFile(src, part, pageSelection(run.pageList), conf); err != nil {
			return fmt.Errorf("collect pages from %s: %w", run.handle, err)
		}
		if rot := normalizeRotation(run.rotation); rot != 0 {
			if err := api.RotateFile(part, part, rot, nil, conf); err != nil {
				return fmt.Errorf("rotate pages from %s: %w", run.handle, err)
			}
		}
		parts = append(parts, part)
	}

	if len(parts) == 1 {
		return copyFile(parts[0], outPath)
	}
	if err := api.MergeCreateFile(parts, outPath, false, conf); err != nil {
		return fmt.Errorf("merge parts: %w", err)
	}
	return nil
}

// pageSelection renders a page list as the selection strings pdfcpu takes.
// Collect preserves the given order and allows repeats.
func pageSelection(pageList []int) []string {
	sel := make([]string, len(pageList))
	for i, p := range pageList {
		sel[i] = strconv.Itoa(p)
	}
	return sel
}

// normalizeRotation maps rotations into [0,360); pdfcpu's rotate takes the
// left keyword's -90 as 270.
func normalizeRotation(rotation int) int {
	return ((rotation % 360) + 360) % 360
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
