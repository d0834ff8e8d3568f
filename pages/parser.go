package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse splits a range expression on whitespace and parses every token into
// a Spec. An empty or whitespace-only expression yields no specs. The first
// invalid token aborts the parse.
//
// Token grammar, left to right: an optional handle (maximal run of uppercase
// letters), a page body, an optional even/odd qualifier and an optional
// rotation keyword. A token that is only a handle selects every page of that
// document.
func Parse(expr string, lib Library) ([]Spec, error) {
	tokens := strings.Fields(expr)
	specs := make([]Spec, 0, len(tokens))

	for _, tok := range tokens {
		spec, err := parseToken(tok, lib)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", tok, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseToken(tok string, lib Library) (Spec, error) {
	handle, body := splitHandle(tok)

	// A bare handle means every page of that document, no rotation.
	if handle != "" && body == "" {
		total, err := countFor(lib, handle)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Handle: handle, Pages: expand(1, total)}, nil
	}

	rotation := 0
	for _, kw := range rotationOrder {
		if strings.HasSuffix(body, kw) {
			rotation = Rotations[kw]
			body = strings.TrimSuffix(body, kw)
			break
		}
	}

	// Qualifiers sit before the rotation keyword, as in "1-10evensouth".
	qualifier := ""
	for _, q := range qualifierOrder {
		if strings.HasSuffix(body, q) {
			qualifier = q
			body = strings.TrimSuffix(body, q)
			break
		}
	}

	pageList, err := resolveBody(body, handle, lib)
	if err != nil {
		return Spec{}, err
	}
	if qualifier != "" {
		pageList = filter(pageList, Qualifiers[qualifier])
	}
	return Spec{Handle: handle, Pages: pageList, Rotation: rotation}, nil
}

// splitHandle strips the maximal leading run of uppercase letters.
func splitHandle(tok string) (handle, body string) {
	i := 0
	for i < len(tok) && tok[i] >= 'A' && tok[i] <= 'Z' {
		i++
	}
	return tok[:i], tok[i:]
}

// resolveBody turns the stripped page body into a concrete page list. The
// body is a single page reference or two references joined by '-'.
func resolveBody(body, handle string, lib Library) ([]int, error) {
	if body == "" {
		return []int{}, nil
	}

	total, err := countFor(lib, handle)
	if err != nil {
		return nil, err
	}

	if i := strings.IndexByte(body, '-'); i >= 0 {
		start, err := resolveRef(body[:i], total)
		if err != nil {
			return nil, err
		}
		end, err := resolveRef(body[i+1:], total)
		if err != nil {
			return nil, err
		}
		return expand(start, end), nil
	}

	page, err := resolveRef(body, total)
	if err != nil {
		return nil, err
	}
	return []int{page}, nil
}

// resolveRef resolves one page reference against the document's page count.
// Out-of-range numbers pass through unchecked; they are rejected when the
// page is actually fetched, matching pdftk.
func resolveRef(ref string, total int) (int, error) {
	switch {
	case ref == "end":
		return total, nil
	case ref == "rend":
		return 1, nil
	case strings.HasPrefix(ref, "r"):
		// Reverse numbering: r1 is the last page, r2 the one before it.
		n, err := strconv.Atoi(ref[1:])
		if err != nil {
			return 0, &InvalidTokenError{Ref: ref}
		}
		return total - n + 1, nil
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, &InvalidTokenError{Ref: ref}
	}
	return n, nil
}

// expand produces the inclusive sequence from start to end, descending when
// start > end.
func expand(start, end int) []int {
	if start <= end {
		out := make([]int, 0, end-start+1)
		for p := start; p <= end; p++ {
			out = append(out, p)
		}
		return out
	}
	out := make([]int, 0, start-end+1)
	for p := start; p >= end; p-- {
		out = append(out, p)
	}
	return out
}

// filter keeps the pages the qualifier accepts, preserving order.
func filter(pageList []int, keep func(int) bool) []int {
	out := make([]int, 0, len(pageList))
	for _, p := range pageList {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
