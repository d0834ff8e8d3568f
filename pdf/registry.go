package pdf

import (
	"fmt"
	"sort"

	"pdf_toolkit/pages"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is one opened input file with its cached page count.
type Document struct {
	Handle string
	Path   string
	Pages  int
}

// Registry holds the documents opened for one operation and serves page
// counts to the range engine. It implements pages.Library.
type Registry struct {
	docs  map[string]*Document
	order []string
}

// Open validates every input and reads its page count through pdfcpu.
func Open(inputs []Input) (*Registry, error) {
	r := &Registry{docs: make(map[string]*Document, len(inputs))}

	for _, in := range inputs {
		if err := ValidateInputFile(in.Path); err != nil {
			return nil, err
		}
		if _, dup := r.docs[in.Handle]; dup {
			return nil, fmt.Errorf("duplicate handle: %s", in.Handle)
		}
		total, err := api.PageCountFile(in.Path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", in.Path, err)
		}
		r.docs[in.Handle] = &Document{Handle: in.Handle, Path: in.Path, Pages: total}
		r.order = append(r.order, in.Handle)
	}
	sort.Strings(r.order)
	return r, nil
}

// PageCount reports the page count of the named document.
func (r *Registry) PageCount(handle string) (int, error) {
	doc, ok := r.docs[handle]
	if !ok {
		return 0, &pages.UnknownHandleError{Handle: handle}
	}
	return doc.Pages, nil
}

// Handles lists the registered handles in ascending order.
func (r *Registry) Handles() []string {
	return r.order
}

// DefaultHandle names the document handle-less ranges resolve against: the
// single registered document, if there is exactly one.
func (r *Registry) DefaultHandle() (string, bool) {
	if len(r.order) == 1 {
		return r.order[0], true
	}
	return "", false
}

// Path returns the file backing the named document.
func (r *Registry) Path(handle string) (string, error) {
	doc, ok := r.docs[handle]
	if !ok {
		return "", &pages.UnknownHandleError{Handle: handle}
	}
	return doc.Path, nil
}

// CheckSequence rejects any ref whose page index falls outside its
// document. Parsing deliberately carries out-of-range numbers through; this
// is where they fail, before any output is written.
func (r *Registry) CheckSequence(seq []pages.Ref) error {
	for _, ref := range seq {
		total, err := r.PageCount(ref.Handle)
		if err != nil {
			return err
		}
		if ref.Page < 1 || ref.Page > total {
			return fmt.Errorf("page %d out of range for %s (%d pages)", ref.Page, ref.Handle, total)
		}
	}
	return nil
}

// newConfiguration is the pdfcpu configuration shared by all operations.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
