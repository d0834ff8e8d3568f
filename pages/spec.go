// Package pages implements the page-range mini-language and the page
// sequence assembly modes used by the cat, rotate and shuffle operations.
//
// A range expression is a whitespace-separated list of tokens such as
// "A1-10east", "Bend-1odd" or a bare handle "B". The package never touches
// document files itself; page counts are supplied through the Library
// interface and the assembled sequences are handed to the codec layer for
// materialization.
package pages

// Spec is one parsed range token: an optional document handle, the resolved
// 1-based page list (may repeat, may descend) and a rotation in degrees.
type Spec struct {
	Handle   string
	Pages    []int
	Rotation int
}

// Ref locates one output page: a source document, a 1-based page index and
// the clockwise rotation to apply to it.
type Ref struct {
	Handle   string
	Page     int
	Rotation int
}

// Library serves page counts for the documents registered in one operation.
type Library interface {
	// PageCount reports the number of pages in the named document.
	PageCount(handle string) (int, error)

	// Handles lists the registered handles in ascending order.
	Handles() []string

	// DefaultHandle names the document used by ranges without a handle.
	// ok is false when no default exists (zero or several documents).
	DefaultHandle() (handle string, ok bool)
}

// resolveHandle maps a token's handle (possibly empty) to a registered one.
func resolveHandle(lib Library, handle string) (string, error) {
	if handle == "" {
		h, ok := lib.DefaultHandle()
		if !ok {
			return "", ErrNoDefaultDocument
		}
		return h, nil
	}
	for _, h := range lib.Handles() {
		if h == handle {
			return handle, nil
		}
	}
	return "", &UnknownHandleError{Handle: handle}
}

// countFor resolves the handle and returns its document's page count.
func countFor(lib Library, handle string) (int, error) {
	h, err := resolveHandle(lib, handle)
	if err != nil {
		return 0, err
	}
	return lib.PageCount(h)
}
