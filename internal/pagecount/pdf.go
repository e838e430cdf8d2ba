package pagecount

import (
	"bytes"
	"fmt"

	pdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating a config directory under the user's home.
	model.ConfigPath = "disable"
}

// PDFReaderEngine counts pages with ledongthuc/pdf.
type PDFReaderEngine struct{}

func (PDFReaderEngine) Name() string { return "ledongthuc/pdf" }

func (PDFReaderEngine) Count(data []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("new pdf reader: %w", err)
	}
	return r.NumPage(), nil
}

// PDFCPUEngine counts pages with pdfcpu in relaxed validation mode, which
// tolerates many files the primary reader rejects.
type PDFCPUEngine struct{}

func (PDFCPUEngine) Name() string { return "pdfcpu" }

func (PDFCPUEngine) Count(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	n, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu page count: %w", err)
	}
	return n, nil
}
