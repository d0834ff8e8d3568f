package api

import "time"

const (
	// FileCleanupDelay is the delay before cleaning up temp files after the response is sent
	FileCleanupDelay = 2 * time.Second

	// DefaultFilePermissions for temp directory creation
	DefaultFilePermissions = 0755

	// UploadField is the multipart form field carrying the PDF file(s)
	UploadField = "pdf"

	// RangesField is the form field carrying the page-range expression
	RangesField = "ranges"
)
