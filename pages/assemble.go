package pages

// Concatenate flattens the specs into the final page sequence in spec order.
// With no specs it selects every page of every registered document, in
// ascending handle order, unrotated.
func Concatenate(lib Library, specs []Spec) ([]Ref, error) {
	var out []Ref

	if len(specs) == 0 {
		for _, h := range lib.Handles() {
			total, err := lib.PageCount(h)
			if err != nil {
				return nil, err
			}
			for p := 1; p <= total; p++ {
				out = append(out, Ref{Handle: h, Page: p})
			}
		}
		return out, nil
	}

	for _, spec := range specs {
		h, err := resolveHandle(lib, spec.Handle)
		if err != nil {
			return nil, err
		}
		for _, p := range spec.Pages {
			out = append(out, Ref{Handle: h, Page: p, Rotation: spec.Rotation})
		}
	}
	return out, nil
}

// RotateOverlay applies the specs' rotations to the default document without
// adding, removing or reordering pages. Overlapping specs overwrite each
// other left to right, they do not accumulate.
func RotateOverlay(lib Library, specs []Spec) ([]Ref, error) {
	h, ok := lib.DefaultHandle()
	if !ok {
		return nil, ErrNoDefaultDocument
	}
	total, err := lib.PageCount(h)
	if err != nil {
		return nil, err
	}

	rotations := make(map[int]int)
	for _, spec := range specs {
		for _, p := range spec.Pages {
			rotations[p] = spec.Rotation
		}
	}

	out := make([]Ref, 0, total)
	for p := 1; p <= total; p++ {
		out = append(out, Ref{Handle: h, Page: p, Rotation: rotations[p]})
	}
	return out, nil
}

// Shuffle interleaves the specs round-robin: repeated left-to-right passes
// over the live sources, one page per source per pass, dropping a source the
// moment it runs out. Unequal sources keep interleaving the survivors
// instead of leaving gaps. Every spec must name a handle.
func Shuffle(specs []Spec) ([]Ref, error) {
	type queue struct {
		handle   string
		rotation int
		pending  []int
	}

	live := make([]*queue, 0, len(specs))
	for _, spec := range specs {
		if spec.Handle == "" {
			return nil, ErrShuffleNeedsHandles
		}
		if len(spec.Pages) == 0 {
			continue
		}
		live = append(live, &queue{handle: spec.Handle, rotation: spec.Rotation, pending: spec.Pages})
	}

	var out []Ref
	for len(live) > 0 {
		// One full pass; sources exhausted by this pass are filtered out
		// here rather than removed mid-iteration.
		next := make([]*queue, 0, len(live))
		for _, q := range live {
			out = append(out, Ref{Handle: q.handle, Page: q.pending[0], Rotation: q.rotation})
			q.pending = q.pending[1:]
			if len(q.pending) > 0 {
				next = append(next, q)
			}
		}
		live = next
	}
	return out, nil
}
