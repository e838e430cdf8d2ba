// Package pagecount detects how many printable pages an uploaded file has.
package pagecount

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"print4me/internal/domain"
	"print4me/internal/port"
)

// Observer receives the outcome of every detection.
type Observer interface {
	ObservePageCount(kind domain.DocumentKind, pages int)
}

// Counter implements port.PageCounter. Paginated formats are parsed; every
// other file counts as one page.
type Counter struct {
	engines     map[domain.DocumentKind]*Fallback
	concurrency int
	observer    Observer
}

// NewCounter creates a Counter with the default engine chains. concurrency
// bounds CountAll; values below 1 mean sequential.
func NewCounter(concurrency int, observer Observer) *Counter {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Counter{
		engines: map[domain.DocumentKind]*Fallback{
			domain.KindPDF:         NewFallback(PDFReaderEngine{}, PDFCPUEngine{}),
			domain.KindSpreadsheet: NewFallback(SheetEngine{}),
		},
		concurrency: concurrency,
		observer:    observer,
	}
}

// CountPages returns the page count of one file, or 0 when a paginated file
// could not be parsed.
func (c *Counter) CountPages(_ context.Context, input port.CountInput) int {
	kind := domain.KindOf(input.ContentType, input.FileName)
	pages := 1
	if chain, ok := c.engines[kind]; ok {
		n, err := chain.Count(input.FileName, input.Data)
		if err != nil {
			log.Printf("pagecount.Counter: could not determine pages of %s (%s): %v", input.FileName, kind, err)
		}
		pages = n
	}
	if c.observer != nil {
		c.observer.ObservePageCount(kind, pages)
	}
	return pages
}

// CountAll counts every input and returns the counts in input order.
func (c *Counter) CountAll(ctx context.Context, inputs []port.CountInput) []int {
	counts := make([]int, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range inputs {
		g.Go(func() error {
			counts[i] = c.CountPages(gctx, inputs[i])
			return nil
		})
	}
	_ = g.Wait()
	return counts
}
