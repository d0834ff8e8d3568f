package pages

import (
	"errors"
	"fmt"
)

// ErrNoDefaultDocument is returned when a range omits the handle but no
// single document is registered to fall back on.
var ErrNoDefaultDocument = errors.New("no document available for a range without a handle")

// ErrShuffleNeedsHandles is returned when a handle-less range is passed to
// shuffle mode, which interleaves by source and so cannot accept a default.
var ErrShuffleNeedsHandles = errors.New("shuffle requires every range to name a handle (e.g. A1-5)")

// UnknownHandleError reports a range referencing a handle that was never
// registered.
type UnknownHandleError struct {
	Handle string
}

func (e *UnknownHandleError) Error() string {
	return fmt.Sprintf("unknown handle: %s", e.Handle)
}

// InvalidTokenError reports a page reference that is neither numeric nor a
// recognized keyword.
type InvalidTokenError struct {
	Ref string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid page reference: %q", e.Ref)
}
