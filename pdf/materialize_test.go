package pdf

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"pdf_toolkit/pages"
)

func testRegistry() *Registry {
	return &Registry{
		docs: map[string]*Document{
			"A": {Handle: "A", Path: "a.pdf", Pages: 10},
			"B": {Handle: "B", Path: "b.pdf", Pages: 3},
		},
		order: []string{"A", "B"},
	}
}

func TestGroupRuns(t *testing.T) {
	seq := []pages.Ref{
		{Handle: "A", Page: 1, Rotation: 90},
		{Handle: "A", Page: 2, Rotation: 90},
		{Handle: "A", Page: 3},
		{Handle: "B", Page: 1},
		{Handle: "B", Page: 2},
		{Handle: "A", Page: 4},
	}
	runs := groupRuns(seq)

	want := []run{
		{handle: "A", rotation: 90, pageList: []int{1, 2}},
		{handle: "A", rotation: 0, pageList: []int{3}},
		{handle: "B", rotation: 0, pageList: []int{1, 2}},
		{handle: "A", rotation: 0, pageList: []int{4}},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("runs = %+v, want %+v", runs, want)
	}
}

func TestGroupRunsKeepsRepeatsAndOrder(t *testing.T) {
	seq := []pages.Ref{
		{Handle: "A", Page: 5},
		{Handle: "A", Page: 5},
		{Handle: "A", Page: 4},
	}
	runs := groupRuns(seq)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if !reflect.DeepEqual(runs[0].pageList, []int{5, 5, 4}) {
		t.Errorf("pages = %v, want [5 5 4]", runs[0].pageList)
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := map[int]int{
		0:    0,
		90:   90,
		180:  180,
		270:  270,
		-90:  270,
		360:  0,
		-180: 180,
	}
	for in, want := range tests {
		if got := normalizeRotation(in); got != want {
			t.Errorf("normalizeRotation(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestCheckSequenceBounds(t *testing.T) {
	reg := testRegistry()

	ok := []pages.Ref{
		{Handle: "A", Page: 1},
		{Handle: "A", Page: 10},
		{Handle: "B", Page: 3},
	}
	if err := reg.CheckSequence(ok); err != nil {
		t.Errorf("valid sequence rejected: %v", err)
	}

	for _, bad := range [][]pages.Ref{
		{{Handle: "A", Page: 0}},
		{{Handle: "A", Page: 11}},
		{{Handle: "B", Page: 999}},
		{{Handle: "C", Page: 1}},
	} {
		if err := reg.CheckSequence(bad); err == nil {
			t.Errorf("sequence %v passed bounds check", bad)
		}
	}
}

func TestCheckSequenceUnknownHandleKind(t *testing.T) {
	reg := testRegistry()

	err := reg.CheckSequence([]pages.Ref{{Handle: "Z", Page: 1}})
	var unknown *pages.UnknownHandleError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownHandleError", err)
	}
}

func TestWriteSequenceEmpty(t *testing.T) {
	reg := testRegistry()
	out := filepath.Join(t.TempDir(), "out.pdf")

	err := WriteSequence(reg, nil, out)
	if !errors.Is(err, ErrNothingToWrite) {
		t.Fatalf("got %v, want ErrNothingToWrite", err)
	}
}

func TestWriteSequenceRejectsOutOfRangeBeforeWriting(t *testing.T) {
	reg := testRegistry()
	out := filepath.Join(t.TempDir(), "out.pdf")

	// page 999 survived parsing by design; it must fail here, before any
	// output exists
	err := WriteSequence(reg, []pages.Ref{{Handle: "A", Page: 999}}, out)
	if err == nil {
		t.Fatal("expected bounds error")
	}
}

func TestRegistryDefaultHandle(t *testing.T) {
	reg := testRegistry()
	if _, ok := reg.DefaultHandle(); ok {
		t.Error("two documents must not yield a default")
	}

	single := &Registry{
		docs:  map[string]*Document{"A": {Handle: "A", Path: "a.pdf", Pages: 10}},
		order: []string{"A"},
	}
	h, ok := single.DefaultHandle()
	if !ok || h != "A" {
		t.Errorf("DefaultHandle = %q, %v; want A, true", h, ok)
	}
}

func TestRegistryHandlesSorted(t *testing.T) {
	reg := testRegistry()
	if !reflect.DeepEqual(reg.Handles(), []string{"A", "B"}) {
		t.Errorf("handles = %v", reg.Handles())
	}
}
