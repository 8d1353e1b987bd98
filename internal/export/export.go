// Package export converts rendered portfolios to PDF using a headless
// browser. Requires Chrome/Chromium to be installed on the system.
package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-studio/internal/rendering"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// FormatPDF is the only export format currently supported.
const FormatPDF = "pdf"

// DefaultTimeout bounds a single print-to-PDF run.
const DefaultTimeout = 30 * time.Second

// DataURL wraps an HTML document in a base64 data: URL so the browser can
// load it without touching the filesystem or network.
func DataURL(htmlContent string) string {
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlContent))
}

// ToPDF renders the given portfolio data with the named template and prints
// the result to PDF.
func ToPDF(ctx context.Context, templateID string, data types.TemplateData) ([]byte, error) {
	html, err := rendering.Render(templateID, data)
	if err != nil {
		return nil, err
	}
	return printHTML(ctx, html)
}

// printHTML loads an HTML document in a headless browser and prints it.
func printHTML(ctx context.Context, htmlContent string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, DefaultTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(DataURL(htmlContent)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("printing to PDF: %w", err)
	}
	return pdf, nil
}

// All exports the given portfolio data with every registered template
// concurrently and returns the results keyed by template id.
func All(ctx context.Context, data types.TemplateData) (map[string][]byte, error) {
	ids := rendering.TemplateIDs()
	results := make([][]byte, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			pdf, err := ToPDF(gctx, id, data)
			if err != nil {
				return fmt.Errorf("exporting %q: %w", id, err)
			}
			results[i] = pdf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(ids))
	for i, id := range ids {
		out[id] = results[i]
	}
	return out, nil
}
