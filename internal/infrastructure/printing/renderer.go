package printing

import (
	"context"
	"time"
)

// Sheets are always A4, sizes in millimetres
const (
	a4WidthMM  = 210
	a4HeightMM = 297
)

type Margins struct {
	Top, Right, Bottom, Left int
}

// DefaultMargins leave room for the page footer
func DefaultMargins() Margins {
	return Margins{Top: 12, Right: 10, Bottom: 12, Left: 10}
}

// RenderRequest is one HTML document to print. Title ends up in the PDF
// metadata and FooterHTML on every page.
type RenderRequest struct {
	HTML       string
	Title      string
	FooterHTML string
	Landscape  bool
	Margins    Margins
	Timeout    time.Duration // zero uses the renderer default
}

type RenderResult struct {
	PDFData        []byte
	PageCount      int
	RenderDuration time.Duration
}

// PDFRenderer prints HTML to PDF
type PDFRenderer interface {
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}

const (
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeInvalidHTML   = "INVALID_HTML"
	ErrCodeDisabled      = "RENDERER_DISABLED"
)

// RenderError carries one of the ErrCode values so the report service
// can tell a disabled renderer from a broken one
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

func (e *RenderError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *RenderError) Unwrap() error { return e.Cause }

// DisabledRenderer is wired when chrome.enabled is false. Sheets then
// fail with RENDERER_DISABLED while maroto and excelize reports still work.
type DisabledRenderer struct{}

func (DisabledRenderer) Render(context.Context, *RenderRequest) (*RenderResult, error) {
	return nil, NewRenderError(ErrCodeDisabled, "HTML to PDF rendering is disabled (chrome.enabled = false)", nil)
}

func (DisabledRenderer) Close() error { return nil }

var _ PDFRenderer = DisabledRenderer{}
