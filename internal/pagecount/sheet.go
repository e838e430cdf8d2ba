package pagecount

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetEngine counts the visible worksheets of an xlsx workbook; each sheet
// prints as one page.
type SheetEngine struct{}

func (SheetEngine) Name() string { return "excelize" }

func (SheetEngine) Count(data []byte) (int, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	visible := 0
	for _, name := range f.GetSheetList() {
		ok, err := f.GetSheetVisible(name)
		if err != nil || ok {
			visible++
		}
	}
	return visible, nil
}
