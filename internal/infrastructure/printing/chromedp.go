package printing

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	infraconfig "github.com/flexo/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const defaultChromeTimeout = 30 * time.Second

// minFooterMarginMM is the bottom margin Chrome needs to draw the footer
const minFooterMarginMM = 10

// ChromedpRenderer prints through headless Chrome. Each Render opens a
// tab on a shared allocator, so one browser serves concurrent requests.
type ChromedpRenderer struct {
	timeout time.Duration
	log     *zap.Logger
	alloc   context.Context
	cancel  context.CancelFunc
}

// NewChromedpRenderer attaches to cfg.RemoteURL when set (a chromedp/
// headless-shell sidecar), otherwise launches Chrome from cfg.ExecPath or
// the PATH on first use.
func NewChromedpRenderer(cfg infraconfig.ChromeConfig, log *zap.Logger) *ChromedpRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	r := &ChromedpRenderer{timeout: cfg.Timeout, log: log.Named("chromedp")}
	if r.timeout <= 0 {
		r.timeout = defaultChromeTimeout
	}

	if cfg.RemoteURL != "" {
		r.alloc, r.cancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return r
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.NoFirstRun,
		// containers ship a 64MB /dev/shm
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	r.alloc, r.cancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

func (r *ChromedpRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if req == nil || strings.TrimSpace(req.HTML) == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}
	started := time.Now()

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = r.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tab, closeTab := chromedp.NewContext(r.alloc, chromedp.WithLogf(r.log.Sugar().Debugf))
	defer closeTab()
	// the tab is derived from the allocator, not ctx
	defer context.AfterFunc(ctx, closeTab)()

	var pdf []byte
	err := chromedp.Run(tab,
		chromedp.Navigate("about:blank"),
		setContent(wrapDocument(req)),
		printToPDF(pageSetupFor(req), &pdf),
	)
	switch {
	case err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, NewRenderError(ErrCodeRenderTimeout, fmt.Sprintf("PDF rendering timed out after %v", timeout), err)
	case err != nil && errors.Is(ctx.Err(), context.Canceled):
		return nil, NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
	case err != nil:
		r.log.Error("Print to PDF failed", zap.String("title", req.Title), zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "chromedp execution failed", err)
	case len(pdf) == 0:
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	res := &RenderResult{PDFData: pdf, PageCount: countPages(pdf), RenderDuration: time.Since(started)}
	r.log.Debug("PDF rendered",
		zap.String("title", req.Title),
		zap.Int("bytes", len(pdf)),
		zap.Int("pages", res.PageCount),
		zap.Duration("took", res.RenderDuration))
	return res, nil
}

// Close shuts the browser down
func (r *ChromedpRenderer) Close() error {
	if r.cancel != nil {
		r.cancel()
	}
	return nil
}

func setContent(document string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, document).Do(ctx)
	})
}

func printToPDF(s pageSetup, out *[]byte) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		data, _, err := page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(s.width).
			WithPaperHeight(s.height).
			WithMarginTop(s.top).
			WithMarginRight(s.right).
			WithMarginBottom(s.bottom).
			WithMarginLeft(s.left).
			WithLandscape(s.landscape).
			WithDisplayHeaderFooter(s.footer != "").
			WithHeaderTemplate("<span></span>").
			WithFooterTemplate(s.footer).
			Do(ctx)
		*out = data
		return err
	})
}

// pageSetup is the A4 page in inches, the unit Chrome's print API takes
type pageSetup struct {
	width, height            float64
	top, right, bottom, left float64
	landscape                bool
	footer                   string
}

func pageSetupFor(req *RenderRequest) pageSetup {
	m := req.Margins
	if req.FooterHTML != "" && m.Bottom < minFooterMarginMM {
		m.Bottom = minFooterMarginMM
	}
	return pageSetup{
		width:     mmToInches(a4WidthMM),
		height:    mmToInches(a4HeightMM),
		top:       mmToInches(float64(m.Top)),
		right:     mmToInches(float64(m.Right)),
		bottom:    mmToInches(float64(m.Bottom)),
		left:      mmToInches(float64(m.Left)),
		landscape: req.Landscape,
		footer:    req.FooterHTML,
	}
}

// wrapDocument turns a fragment into a pt-BR UTF-8 document. Full
// documents are returned unchanged.
func wrapDocument(req *RenderRequest) string {
	lower := strings.ToLower(req.HTML)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return req.HTML
	}
	var title string
	if req.Title != "" {
		title = "<title>" + html.EscapeString(req.Title) + "</title>"
	}
	return `<!DOCTYPE html><html lang="pt-BR"><head><meta charset="UTF-8">` + title +
		"</head><body>" + req.HTML + "</body></html>"
}

func mmToInches(mm float64) float64 { return mm / 25.4 }

// countPages counts /Type /Page objects. The page tree node /Type /Pages
// matches the same prefix and is subtracted.
func countPages(pdf []byte) int {
	s := string(pdf)
	return max(strings.Count(s, "/Type /Page")-strings.Count(s, "/Type /Pages"), 1)
}

var _ PDFRenderer = (*ChromedpRenderer)(nil)
