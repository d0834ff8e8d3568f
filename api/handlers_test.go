package api

import (
	"errors"
	"net/http"
	"testing"

	"pdf_toolkit/pages"
	pdfPkg "pdf_toolkit/pdf"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"document.pdf", "document.pdf"},
		{"../../etc/passwd", "etc_passwd"},
		{"dir/file.pdf", "dir_file.pdf"},
		{"dir\\file.pdf", "dir_file.pdf"},
		{"  spaced.pdf  ", "spaced.pdf"},
		{"", "document.pdf"},
	}
	for _, tc := range tests {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatusForError(t *testing.T) {
	badRequests := []error{
		&pages.UnknownHandleError{Handle: "C"},
		&pages.InvalidTokenError{Ref: "abc"},
		&pdfPkg.FileNotFoundError{Path: "x.pdf"},
		&pdfPkg.NotPDFError{Path: "x.txt"},
		pages.ErrNoDefaultDocument,
		pages.ErrShuffleNeedsHandles,
		pdfPkg.ErrNothingToWrite,
	}
	for _, err := range badRequests {
		if got := statusForError(err); got != http.StatusBadRequest {
			t.Errorf("statusForError(%v) = %d, want 400", err, got)
		}
	}

	if got := statusForError(errors.New("disk on fire")); got != http.StatusInternalServerError {
		t.Errorf("unexpected status %d for internal error, want 500", got)
	}
}
