package pagecount_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"print4me/internal/domain"
	"print4me/internal/pagecount"
	"print4me/internal/port"
)

type fakeEngine struct {
	name  string
	pages int
	err   error
	panic bool
	calls int
}

func (e *fakeEngine) Name() string { return e.name }

func (e *fakeEngine) Count(_ []byte) (int, error) {
	e.calls++
	if e.panic {
		panic("corrupt xref")
	}
	return e.pages, e.err
}

type recordingObserver struct {
	kinds []domain.DocumentKind
	pages []int
}

func (o *recordingObserver) ObservePageCount(kind domain.DocumentKind, pages int) {
	o.kinds = append(o.kinds, kind)
	o.pages = append(o.pages, pages)
}

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := &fakeEngine{name: "primary", pages: 4}
	secondary := &fakeEngine{name: "secondary", pages: 9}

	n, err := pagecount.NewFallback(primary, secondary).Count("a.pdf", nil)

	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallback_SecondaryAfterError(t *testing.T) {
	primary := &fakeEngine{name: "primary", err: errors.New("bad header")}
	secondary := &fakeEngine{name: "secondary", pages: 9}

	n, err := pagecount.NewFallback(primary, secondary).Count("a.pdf", nil)

	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestFallback_ZeroFallsThrough(t *testing.T) {
	primary := &fakeEngine{name: "primary", pages: 0}
	secondary := &fakeEngine{name: "secondary", pages: 2}

	n, err := pagecount.NewFallback(primary, secondary).Count("a.pdf", nil)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFallback_PanicIsRecovered(t *testing.T) {
	primary := &fakeEngine{name: "primary", panic: true}
	secondary := &fakeEngine{name: "secondary", pages: 3}

	n, err := pagecount.NewFallback(primary, secondary).Count("a.pdf", nil)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFallback_AllFail(t *testing.T) {
	primary := &fakeEngine{name: "primary", err: errors.New("bad header")}
	secondary := &fakeEngine{name: "secondary", panic: true}

	n, err := pagecount.NewFallback(primary, secondary).Count("a.pdf", nil)

	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestCounter_PDF(t *testing.T) {
	obs := &recordingObserver{}
	c := pagecount.NewCounter(1, obs)

	n := c.CountPages(context.Background(), port.CountInput{
		FileName:    "thesis.pdf",
		ContentType: "application/pdf",
		Data:        minimalPDF(3),
	})

	assert.Equal(t, 3, n)
	assert.Equal(t, []domain.DocumentKind{domain.KindPDF}, obs.kinds)
}

func TestCounter_PDFByExtension(t *testing.T) {
	c := pagecount.NewCounter(1, nil)

	n := c.CountPages(context.Background(), port.CountInput{
		FileName:    "scan.PDF",
		ContentType: "application/octet-stream",
		Data:        minimalPDF(2),
	})

	assert.Equal(t, 2, n)
}

func TestCounter_CorruptPDFIsUndetermined(t *testing.T) {
	obs := &recordingObserver{}
	c := pagecount.NewCounter(1, obs)

	n := c.CountPages(context.Background(), port.CountInput{
		FileName:    "broken.pdf",
		ContentType: "application/pdf",
		Data:        []byte("this is not a pdf"),
	})

	assert.Equal(t, 0, n)
	assert.Equal(t, []int{0}, obs.pages)
}

func TestCounter_ImageCountsAsOnePage(t *testing.T) {
	c := pagecount.NewCounter(1, nil)

	n := c.CountPages(context.Background(), port.CountInput{
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xFF, 0xD8, 0xFF},
	})

	assert.Equal(t, 1, n)
}

func TestCounter_WordDocumentCountsAsOnePage(t *testing.T) {
	c := pagecount.NewCounter(1, nil)

	n := c.CountPages(context.Background(), port.CountInput{
		FileName:    "letter.docx",
		ContentType: domain.ContentTypeDOCX,
		Data:        []byte("PK"),
	})

	assert.Equal(t, 1, n)
}

func TestCounter_SpreadsheetCountsSheets(t *testing.T) {
	c := pagecount.NewCounter(1, nil)

	n := c.CountPages(context.Background(), port.CountInput{
		FileName:    "budget.xlsx",
		ContentType: domain.ContentTypeXLSX,
		Data:        workbook(t, "Q1", "Q2"),
	})

	// excelize.NewFile starts with Sheet1.
	assert.Equal(t, 3, n)
}

func TestCounter_CountAllKeepsOrder(t *testing.T) {
	c := pagecount.NewCounter(3, nil)

	counts := c.CountAll(context.Background(), []port.CountInput{
		{FileName: "a.pdf", ContentType: "application/pdf", Data: minimalPDF(5)},
		{FileName: "b.png", ContentType: "image/png"},
		{FileName: "c.pdf", ContentType: "application/pdf", Data: []byte("garbage")},
		{FileName: "d.pdf", ContentType: "application/pdf", Data: minimalPDF(1)},
	})

	assert.Equal(t, []int{5, 1, 0, 1}, counts)
}
