package api

import (
	"archive/zip"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pdf_toolkit/pages"
	pdfPkg "pdf_toolkit/pdf"

	"github.com/gin-gonic/gin"
)

func HandleUpload(c *gin.Context, config *Config) {
	file, header, err := c.Request.FormFile(UploadField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if err := validatePDFFile(file, header, config.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ensureTempDir(config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	safeFilename := sanitizeFilename(header.Filename)
	uniqueID := generateUniqueID()
	filename := filepath.Join(config.TempDir, uniqueID+"_"+safeFilename)

	out, err := os.Create(filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	defer out.Close()

	if _, err = out.ReadFrom(file); err != nil {
		os.Remove(filename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": header.Filename, "path": filename})
}

// HandleCat merges pages from the uploaded files. Files are registered under
// handles A, B, C... in upload order; the optional "ranges" field selects
// and orders pages, otherwise everything is merged.
func HandleCat(c *gin.Context, config *Config) {
	inputs, cleanup, err := saveUploads(c, config)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	runRangeOperation(c, config, "cat", func(outFile string) error {
		return pdfPkg.Cat(inputs, rangeList(c), outFile)
	})
}

// HandleRotate rotates pages of a single uploaded file in place.
func HandleRotate(c *gin.Context, config *Config) {
	inputs, cleanup, err := saveUploads(c, config)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	if len(inputs) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rotate takes exactly one PDF file"})
		return
	}
	ranges := rangeList(c)
	if len(ranges) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rotate requires the ranges field"})
		return
	}

	runRangeOperation(c, config, "rotated", func(outFile string) error {
		return pdfPkg.Rotate(inputs[0].Path, ranges, outFile)
	})
}

// HandleShuffle collates pages round-robin across the uploaded files.
func HandleShuffle(c *gin.Context, config *Config) {
	inputs, cleanup, err := saveUploads(c, config)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	ranges := rangeList(c)
	if len(ranges) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shuffle requires the ranges field"})
		return
	}

	runRangeOperation(c, config, "shuffled", func(outFile string) error {
		return pdfPkg.Shuffle(inputs, ranges, outFile)
	})
}

// HandleBurst splits a single uploaded file into pages and responds with a
// zip archive of the page files.
func HandleBurst(c *gin.Context, config *Config) {
	inputs, cleanup, err := saveUploads(c, config)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	if len(inputs) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "burst takes exactly one PDF file"})
		return
	}

	burstDir := filepath.Join(config.TempDir, "burst_"+generateUniqueID())
	defer os.RemoveAll(burstDir)

	written, err := pdfPkg.Burst(inputs[0].Path, pdfPkg.DefaultBurstPattern, burstDir)
	if err != nil {
		log.Printf("PDF operation error: %v", err)
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", `attachment; filename="pages.zip"`)
	c.Status(http.StatusOK)

	zw := zip.NewWriter(c.Writer)
	for _, f := range written {
		if err := addZipEntry(zw, f); err != nil {
			log.Printf("zip write error: %v", err)
			return
		}
	}
	if err := zw.Close(); err != nil {
		log.Printf("zip close error: %v", err)
	}
}

// runRangeOperation writes the operation's output to a temp file and sends
// it back as a download, cleaning both up after the response.
func runRangeOperation(c *gin.Context, config *Config, suffix string, operation func(outFile string) error) {
	if err := ensureTempDir(config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}
	outFile := filepath.Join(config.TempDir, "output_"+generateUniqueID()+"_"+suffix+".pdf")

	if err := operation(outFile); err != nil {
		if _, statErr := os.Stat(outFile); statErr == nil {
			os.Remove(outFile)
		}
		log.Printf("PDF operation error: %v", err)
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "document_"+suffix+".pdf"))
	c.File(outFile)

	// Clean up after the response is sent to avoid racing the transfer
	defer func() {
		go func() {
			time.Sleep(FileCleanupDelay)
			os.Remove(outFile)
		}()
	}()
}

// saveUploads stores every file under the "pdf" form field in the temp
// directory and registers them as inputs A, B, C... in upload order. The
// returned cleanup removes the stored files.
func saveUploads(c *gin.Context, config *Config) ([]pdfPkg.Input, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fmt.Errorf("no PDF file provided")
	}
	headers := form.File[UploadField]
	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("no PDF file provided")
	}

	if err := ensureTempDir(config.TempDir); err != nil {
		return nil, nil, fmt.Errorf("failed to create temp directory")
	}

	var saved []string
	cleanup := func() {
		go func() {
			time.Sleep(FileCleanupDelay)
			for _, f := range saved {
				os.Remove(f)
			}
		}()
	}

	inputs := make([]pdfPkg.Input, 0, len(headers))
	for i, header := range headers {
		file, err := header.Open()
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to read upload %s", header.Filename)
		}
		if err := validatePDFFile(file, header, config.MaxFileSize); err != nil {
			file.Close()
			cleanup()
			return nil, nil, err
		}

		inFile := filepath.Join(config.TempDir, fmt.Sprintf("input_%s_%d.pdf", generateUniqueID(), i))
		out, err := os.Create(inFile)
		if err != nil {
			file.Close()
			cleanup()
			return nil, nil, fmt.Errorf("failed to save input file")
		}
		_, err = out.ReadFrom(file)
		out.Close()
		file.Close()
		if err != nil {
			os.Remove(inFile)
			cleanup()
			return nil, nil, fmt.Errorf("failed to save input file")
		}

		saved = append(saved, inFile)
		inputs = append(inputs, pdfPkg.Input{Handle: string(rune('A' + i)), Path: inFile})
	}
	return inputs, cleanup, nil
}

// rangeList returns the ranges field as the slice the operations take;
// empty field means no ranges.
func rangeList(c *gin.Context) []string {
	ranges := strings.TrimSpace(c.PostForm(RangesField))
	if ranges == "" {
		return nil
	}
	return []string{ranges}
}

// statusForError maps range and input errors to 400, everything else to 500.
func statusForError(err error) int {
	var unknownHandle *pages.UnknownHandleError
	var invalidToken *pages.InvalidTokenError
	var notFound *pdfPkg.FileNotFoundError
	var notPDF *pdfPkg.NotPDFError

	switch {
	case errors.As(err, &unknownHandle),
		errors.As(err, &invalidToken),
		errors.As(err, &notFound),
		errors.As(err, &notPDF),
		errors.Is(err, pages.ErrNoDefaultDocument),
		errors.Is(err, pages.ErrShuffleNeedsHandles),
		errors.Is(err, pdfPkg.ErrNothingToWrite):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func addZipEntry(zw *zip.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := zw.Create(filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}

// ensureTempDir creates the temp directory if it doesn't exist
func ensureTempDir(tempDir string) error {
	return os.MkdirAll(tempDir, DefaultFilePermissions)
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = filepath.Base(filename)
	filename = strings.TrimSpace(filename)

	if filename == "" {
		filename = "document.pdf"
	}
	return filename
}

// generateUniqueID generates a unique identifier for temp files
func generateUniqueID() string {
	b := make([]byte, 8)
	rand.Read(b)
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("%d_%s", timestamp, hex.EncodeToString(b))
}

// validatePDFFile checks the size limit and the %PDF header magic
func validatePDFFile(file multipart.File, header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	buffer := make([]byte, 4)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file header: %v", err)
	}
	if n >= 4 && string(buffer[:4]) != "%PDF" {
		return fmt.Errorf("invalid PDF file: header does not match")
	}

	if _, err = file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to reset file position: %v", err)
	}
	return nil
}
