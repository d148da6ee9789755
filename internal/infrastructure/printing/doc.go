// Package printing renders the service order and invoice sheets.
//
// Sheets are html/template documents embedded in the binary, formatted for
// pt-BR (R$ 1.234,50, dd/mm/yyyy) and printed to A4 PDF by headless Chrome
// through chromedp. With chrome.enabled = false a DisabledRenderer is wired
// instead and every PDF request fails with RENDERER_DISABLED.
//
//	engine, _ := printing.NewTemplateEngine()
//	sheets := printing.NewSheetRenderer(engine, printing.NewChromedpRenderer(cfg.Chrome, logger))
//	pdf, err := sheets.ServiceOrderPDF(ctx, sheet)
package printing
