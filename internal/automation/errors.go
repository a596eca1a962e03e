package automation

import (
	"errors"
	"fmt"
)

// ErrNoActiveDocument is returned by operations that require an open
// document when none is open.
var ErrNoActiveDocument = errors.New("no active document: open or create a document first")

// InitializationError indicates Word could not be started or attached to,
// e.g. because it is not installed.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("failed to initialize Word application: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// DocumentOpenError indicates a path did not resolve to a readable document.
type DocumentOpenError struct {
	Path string
	Err  error
}

func (e *DocumentOpenError) Error() string {
	return fmt.Sprintf("cannot open document %q: %v", e.Path, e.Err)
}

func (e *DocumentOpenError) Unwrap() error { return e.Err }

// OutOfRangeError indicates a 1-based index argument fell outside the valid
// range of its target collection. Checked before any mutation.
type OutOfRangeError struct {
	Kind  string // "Table", "Row", "Column", "Inline shape", ...
	Index int
	Max   int // highest valid index
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d is out of bounds (valid range 1-%d)", e.Kind, e.Index, e.Max)
}

// HeaderFooterNotFoundError indicates the requested header/footer variant is
// not active under the document's current page setup.
type HeaderFooterNotFoundError struct {
	Kind    string // "header" or "footer"
	Variant int    // WdHeaderFooterIndex code
	Section int
}

func (e *HeaderFooterNotFoundError) Error() string {
	return fmt.Sprintf("%s (%s) not found in section %d: the matching page setup option is off",
		e.Kind, HeaderFooterVariantName(e.Variant), e.Section)
}

// NoMatchError indicates a replace-all request found no occurrences. It is a
// soft business failure: the tool result is error-flagged but no automation
// call failed.
type NoMatchError struct {
	Text string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no occurrences of %q found", e.Text)
}

// OpError wraps any other failure from the automation layer with the name of
// the operation that hit it.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// IsOutOfRange reports whether err is an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var e *OutOfRangeError
	return errors.As(err, &e)
}

// IsNoActiveDocument reports whether err is ErrNoActiveDocument.
func IsNoActiveDocument(err error) bool {
	return errors.Is(err, ErrNoActiveDocument)
}

// IsInitialization reports whether err is an InitializationError.
func IsInitialization(err error) bool {
	var e *InitializationError
	return errors.As(err, &e)
}

// IsNoMatch reports whether err is a NoMatchError.
func IsNoMatch(err error) bool {
	var e *NoMatchError
	return errors.As(err, &e)
}
