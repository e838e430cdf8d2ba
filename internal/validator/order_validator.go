// Package validator checks submitted print orders.
package validator

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"print4me/internal/domain"
	"print4me/internal/port"
	"print4me/internal/pricing"
)

// Limits bounds the files accepted on one order.
type Limits struct {
	MaxFiles    int
	MaxFileSize int64
}

// DefaultLimits returns the standard per-order limits.
func DefaultLimits() Limits {
	return Limits{MaxFiles: domain.MaxFilesPerOrder, MaxFileSize: domain.MaxFileSizeBytes}
}

// OrderValidator turns raw submitted fields and stored files into a
// validated order, collecting every violation before failing.
type OrderValidator struct {
	counter port.PageCounter
	storage port.TempStorage
	limits  Limits
}

// NewOrderValidator creates an OrderValidator.
func NewOrderValidator(counter port.PageCounter, storage port.TempStorage, limits Limits) *OrderValidator {
	if limits.MaxFiles <= 0 {
		limits.MaxFiles = domain.MaxFilesPerOrder
	}
	if limits.MaxFileSize <= 0 {
		limits.MaxFileSize = domain.MaxFileSizeBytes
	}
	return &OrderValidator{counter: counter, storage: storage, limits: limits}
}

// Validate checks raw and files. On failure the returned error is a
// *domain.ValidationError listing every problem found. Stored files are
// not deleted here.
func (v *OrderValidator) Validate(ctx context.Context, raw domain.RawOrder, files []domain.UploadedFile) (*domain.Order, error) {
	verr := &domain.ValidationError{}

	if !required(raw.Name) {
		verr.Add("Name is required")
	}
	if !IsValidMobile(raw.Mobile) {
		verr.Add("Valid Egypt mobile number is required")
	}
	if !required(raw.Address) {
		verr.Add("Delivery address is required")
	}

	filesOK := v.checkFiles(files, verr)
	opts := parseOptions(raw, verr)

	var items []domain.OrderItem
	if filesOK {
		selections := domain.ParseSelections(raw.FilesMeta, len(files))
		items = v.measure(ctx, files, selections)

		total := 0
		for i := range items {
			pages := items[i].BilledPages
			if items[i].Manual && pages > domain.MaxTotalPages {
				verr.Add(fmt.Sprintf("Manual page count for %s must be between 1 and %d", items[i].File.OriginalName, domain.MaxTotalPages))
				pages = domain.MaxTotalPages + 1
			}
			// Saturate so large counts cannot wrap the sum back into range.
			total = min(total+min(pages, domain.MaxTotalPages+1), domain.MaxTotalPages+1)
		}
		switch {
		case total < 1:
			verr.Add("Could not determine total pages from uploaded files")
		case total > domain.MaxTotalPages:
			verr.Add(fmt.Sprintf("Total pages must not exceed %d", domain.MaxTotalPages))
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	clientPages, _ := strconv.Atoi(strings.TrimSpace(raw.Pages))

	return &domain.Order{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(raw.Name),
		Mobile:      NormalizeMobile(raw.Mobile),
		Address:     strings.TrimSpace(raw.Address),
		Notes:       strings.TrimSpace(raw.Notes),
		Options:     opts,
		Items:       items,
		ClientPages: clientPages,
	}, nil
}

func (v *OrderValidator) checkFiles(files []domain.UploadedFile, verr *domain.ValidationError) bool {
	if len(files) == 0 {
		verr.Add("At least one file is required")
		return false
	}
	ok := true
	if len(files) > v.limits.MaxFiles {
		verr.Add(fmt.Sprintf("At most %d files are allowed", v.limits.MaxFiles))
		ok = false
	}
	for _, f := range files {
		if f.Size > v.limits.MaxFileSize {
			verr.Add(fmt.Sprintf("%s exceeds the %d MB size limit", f.OriginalName, v.limits.MaxFileSize/(1024*1024)))
			ok = false
		}
		if !domain.IsAllowedUpload(f.ContentType, f.OriginalName) {
			verr.Add(fmt.Sprintf("Unsupported file type: %s for %s", f.ContentType, f.OriginalName))
			ok = false
		}
	}
	return ok
}

func parseOptions(raw domain.RawOrder, verr *domain.ValidationError) domain.PrintOptions {
	opts := domain.PrintOptions{
		ColorMode: domain.ColorModeColor,
		PaperSize: domain.PaperSizeA4,
		Sides:     domain.SidesSingle,
		Copies:    1,
	}

	if s := strings.TrimSpace(raw.ColorMode); s != "" {
		if mode, ok := domain.ParseColorMode(s); ok {
			opts.ColorMode = mode
		} else {
			verr.Add("colorMode must be one of: color, monochrome")
		}
	}
	if s := strings.TrimSpace(raw.PaperSize); s != "" {
		if domain.AllowedPaperSizes[domain.PaperSize(s)] {
			opts.PaperSize = domain.PaperSize(s)
		} else {
			verr.Add("paperSize must be one of: A4, A3")
		}
	}
	if s := strings.TrimSpace(raw.Sides); s != "" {
		if domain.AllowedSides[domain.Sides(s)] {
			opts.Sides = domain.Sides(s)
		} else {
			verr.Add("sides must be one of: single, double")
		}
	}
	if s := strings.TrimSpace(raw.Copies); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < domain.MinCopies || n > domain.MaxCopies {
			verr.Add(fmt.Sprintf("copies must be an integer between %d and %d", domain.MinCopies, domain.MaxCopies))
		} else {
			opts.Copies = n
		}
	}
	return opts
}

// ValidateQuote checks the print options and page count of a price preview.
func ValidateQuote(raw domain.RawOrder) (domain.PrintOptions, int, error) {
	verr := &domain.ValidationError{}
	opts := parseOptions(raw, verr)

	pages, err := strconv.Atoi(strings.TrimSpace(raw.Pages))
	if err != nil || pages < 1 || pages > domain.MaxTotalPages {
		verr.Add(fmt.Sprintf("pages must be an integer between 1 and %d", domain.MaxTotalPages))
	}
	if verr.HasErrors() {
		return domain.PrintOptions{}, 0, verr
	}
	return opts, pages, nil
}

// measure computes detected and billed pages for every file. A manual
// override skips detection for its file.
func (v *OrderValidator) measure(ctx context.Context, files []domain.UploadedFile, selections domain.SelectionSet) []domain.OrderItem {
	items := make([]domain.OrderItem, len(files))
	for i, f := range files {
		sel := selections.For(i)
		item := domain.OrderItem{File: f, Selection: sel}

		if sel != nil && sel.ManualPages > 0 {
			item.BilledPages, item.Manual = pricing.BilledPages(0, sel)
			items[i] = item
			continue
		}

		data, err := v.storage.Read(ctx, f.StorageKey)
		if err != nil {
			log.Printf("orderValidator.measure: reading %s failed: %v", f.OriginalName, err)
		} else {
			item.DetectedPages = v.counter.CountPages(ctx, port.CountInput{
				FileName:    f.OriginalName,
				ContentType: f.ContentType,
				Data:        data,
			})
		}
		item.BilledPages = pricing.ResolvePages(item.DetectedPages, sel)
		items[i] = item
	}
	return items
}
