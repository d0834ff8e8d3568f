package pdf

import (
	"strings"

	"pdf_toolkit/pages"
)

// Cat concatenates pages from the inputs into outPath in range order. With
// no ranges every page of every input is merged, inputs in ascending handle
// order.
func Cat(inputs []Input, ranges []string, outPath string) error {
	reg, err := Open(inputs)
	if err != nil {
		return err
	}
	specs, err := pages.Parse(strings.Join(ranges, " "), reg)
	if err != nil {
		return err
	}
	seq, err := pages.Concatenate(reg, specs)
	if err != nil {
		return err
	}
	return WriteSequence(reg, seq, outPath)
}

// Rotate applies the ranges' rotations to the single input, preserving the
// full page set and order.
func Rotate(inPath string, ranges []string, outPath string) error {
	reg, err := Open([]Input{{Handle: "A", Path: inPath}})
	if err != nil {
		return err
	}
	specs, err := pages.Parse(strings.Join(ranges, " "), reg)
	if err != nil {
		return err
	}
	seq, err := pages.RotateOverlay(reg, specs)
	if err != nil {
		return err
	}
	return WriteSequence(reg, seq, outPath)
}

// Shuffle collates the ranges' pages round-robin across their source
// documents into outPath. Every range must name a handle.
func Shuffle(inputs []Input, ranges []string, outPath string) error {
	reg, err := Open(inputs)
	if err != nil {
		return err
	}
	specs, err := pages.Parse(strings.Join(ranges, " "), reg)
	if err != nil {
		return err
	}
	seq, err := pages.Shuffle(specs)
	if err != nil {
		return err
	}
	return WriteSequence(reg, seq, outPath)
}
