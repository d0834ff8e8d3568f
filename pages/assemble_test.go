package pages

import (
	"errors"
	"reflect"
	"testing"
)

func TestConcatenateNoSpecs(t *testing.T) {
	// No ranges: every page of every document, ascending handle order.
	lib := &fakeLibrary{counts: map[string]int{"B": 3, "A": 2}}

	got, err := Concatenate(lib, nil)
	if err != nil {
		t.Fatalf("concatenate failed: %v", err)
	}
	want := []Ref{
		{Handle: "A", Page: 1}, {Handle: "A", Page: 2},
		{Handle: "B", Page: 1}, {Handle: "B", Page: 2}, {Handle: "B", Page: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestConcatenateSpecOrder(t *testing.T) {
	lib := twoDocs()

	specs, err := Parse("A1-5 B10-15 A6-10", lib)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got, err := Concatenate(lib, specs)
	if err != nil {
		t.Fatalf("concatenate failed: %v", err)
	}
	if len(got) != 16 {
		t.Fatalf("got %d refs, want 16", len(got))
	}
	// specification order is the output order, not handle order
	if got[0] != (Ref{Handle: "A", Page: 1}) {
		t.Errorf("first ref = %v", got[0])
	}
	if got[5] != (Ref{Handle: "B", Page: 10}) {
		t.Errorf("sixth ref = %v", got[5])
	}
	if got[15] != (Ref{Handle: "A", Page: 10}) {
		t.Errorf("last ref = %v", got[15])
	}
}

func TestConcatenateAppliesRotationPerSpec(t *testing.T) {
	lib := twoDocs()

	specs, err := Parse("A1-3east A4north", lib)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got, err := Concatenate(lib, specs)
	if err != nil {
		t.Fatalf("concatenate failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if got[i].Rotation != 90 {
			t.Errorf("ref %d rotation = %d, want 90", i, got[i].Rotation)
		}
	}
	if got[3].Rotation != 0 {
		t.Errorf("north must leave rotation at 0, got %d", got[3].Rotation)
	}
}

func TestConcatenateResolvesDefaultHandle(t *testing.T) {
	lib := &fakeLibrary{counts: map[string]int{"A": 10}}

	specs, err := Parse("1-3", lib)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got, err := Concatenate(lib, specs)
	if err != nil {
		t.Fatalf("concatenate failed: %v", err)
	}
	for _, ref := range got {
		if ref.Handle != "A" {
			t.Fatalf("ref %v did not resolve to the single document", ref)
		}
	}
}

func TestRotateOverlayPreservesPages(t *testing.T) {
	lib := &fakeLibrary{counts: map[string]int{"A": 10}}

	specs, err := Parse("1-5south 7-9west", lib)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got, err := RotateOverlay(lib, specs)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}

	if len(got) != 10 {
		t.Fatalf("got %d refs, want all 10 pages", len(got))
	}
	wantRotations := []int{180, 180, 180, 180, 180, 0, 270, 270, 270, 0}
	for i, ref := range got {
		if ref.Page != i+1 {
			t.Errorf("page order disturbed at %d: got page %d", i, ref.Page)
		}
		if ref.Rotation != wantRotations[i] {
			t.Errorf("page %d rotation = %d, want %d", i+1, ref.Rotation, wantRotations[i])
		}
	}
}

func TestRotateOverlayLastWriteWins(t *testing.T) {
	lib := &fakeLibrary{counts: map[string]int{"A": 10}}

	// 3 is rotated south first, then reset by the later north spec.
	specs, err := Parse("1-5south 3north", lib)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got, err := RotateOverlay(lib, specs)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	if got[2].Rotation != 0 {
		t.Errorf("page 3 rotation = %d, want 0 (overwritten)", got[2].Rotation)
	}
	if got[1].Rotation != 180 {
		t.Errorf("page 2 rotation = %d, want 180", got[1].Rotation)
	}
}

func TestRotateOverlayNeedsDefault(t *testing.T) {
	lib := &fakeLibrary{counts: map[string]int{"A": 10, "B": 20}}

	_, err := RotateOverlay(lib, nil)
	if !errors.Is(err, ErrNoDefaultDocument) {
		t.Fatalf("got %v, want ErrNoDefaultDocument", err)
	}
}

func TestShuffleInterleaves(t *testing.T) {
	specs := []Spec{
		{Handle: "A", Pages: []int{1, 2, 3}},
		{Handle: "B", Pages: []int{1, 2, 3}},
	}
	got, err := Shuffle(specs)
	if err != nil {
		t.Fatalf("shuffle failed: %v", err)
	}
	want := []Ref{
		{Handle: "A", Page: 1}, {Handle: "B", Page: 1},
		{Handle: "A", Page: 2}, {Handle: "B", Page: 2},
		{Handle: "A", Page: 3}, {Handle: "B", Page: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestShuffleUnequalSourcesCompact(t *testing.T) {
	specs := []Spec{
		{Handle: "A", Pages: []int{1, 2, 3}},
		{Handle: "B", Pages: []int{1, 2, 3, 4, 5, 6, 7}},
	}
	got, err := Shuffle(specs)
	if err != nil {
		t.Fatalf("shuffle failed: %v", err)
	}
	want := []Ref{
		{Handle: "A", Page: 1}, {Handle: "B", Page: 1},
		{Handle: "A", Page: 2}, {Handle: "B", Page: 2},
		{Handle: "A", Page: 3}, {Handle: "B", Page: 3},
		{Handle: "B", Page: 4}, {Handle: "B", Page: 5},
		{Handle: "B", Page: 6}, {Handle: "B", Page: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestShuffleReverseSource(t *testing.T) {
	specs := []Spec{
		{Handle: "A", Pages: []int{1, 2, 3}},
		{Handle: "B", Pages: []int{3, 2, 1}},
	}
	got, err := Shuffle(specs)
	if err != nil {
		t.Fatalf("shuffle failed: %v", err)
	}
	want := []Ref{
		{Handle: "A", Page: 1}, {Handle: "B", Page: 3},
		{Handle: "A", Page: 2}, {Handle: "B", Page: 2},
		{Handle: "A", Page: 3}, {Handle: "B", Page: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestShuffleCarriesRotation(t *testing.T) {
	specs := []Spec{
		{Handle: "A", Pages: []int{1, 2}, Rotation: 90},
		{Handle: "B", Pages: []int{1, 2}},
	}
	got, err := Shuffle(specs)
	if err != nil {
		t.Fatalf("shuffle failed: %v", err)
	}
	wantRotations := []int{90, 0, 90, 0}
	for i, ref := range got {
		if ref.Rotation != wantRotations[i] {
			t.Errorf("ref %d rotation = %d, want %d", i, ref.Rotation, wantRotations[i])
		}
	}
}

func TestShuffleRejectsHandleless(t *testing.T) {
	specs := []Spec{
		{Handle: "A", Pages: []int{1}},
		{Pages: []int{1}},
	}
	_, err := Shuffle(specs)
	if !errors.Is(err, ErrShuffleNeedsHandles) {
		t.Fatalf("got %v, want ErrShuffleNeedsHandles", err)
	}
}

func TestShuffleSkipsEmptySources(t *testing.T) {
	specs := []Spec{
		{Handle: "A", Pages: []int{}},
		{Handle: "B", Pages: []int{1, 2}},
	}
	got, err := Shuffle(specs)
	if err != nil {
		t.Fatalf("shuffle failed: %v", err)
	}
	want := []Ref{{Handle: "B", Page: 1}, {Handle: "B", Page: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}
