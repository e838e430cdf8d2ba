package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// UploadedFile is one submitted document, held in temporary storage for the
// lifetime of a single request.
type UploadedFile struct {
	OriginalName string `json:"originalName"`
	ContentType  string `json:"mimetype"`
	Size         int64  `json:"size"`
	StorageKey   string `json:"-"`
}

// Kind returns how pages of this file are counted.
func (f UploadedFile) Kind() DocumentKind {
	return KindOf(f.ContentType, f.OriginalName)
}

// FileSelection is the client-declared billing intent for the file at Index.
type FileSelection struct {
	Index       int        `json:"index"`
	Paginated   bool       `json:"isPdf"`
	Mode        SelectMode `json:"selectMode,omitempty"`
	From        int        `json:"rangeFrom,omitempty"`
	To          int        `json:"rangeTo,omitempty"`
	ManualPages int        `json:"manualPages,omitempty"`
}

// IsRange reports whether the selection restricts billing to a sub-range.
func (s *FileSelection) IsRange() bool {
	return s != nil && s.Paginated && s.Mode == SelectRange
}

// SelectionSet maps upload position to the client's selection for that file.
type SelectionSet map[int]FileSelection

// For returns the selection for index i, or nil if none was declared.
func (s SelectionSet) For(i int) *FileSelection {
	sel, ok := s[i]
	if !ok {
		return nil
	}
	return &sel
}

// flexInt decodes a JSON number, numeric string, empty string or null.
// Unparseable values decode to 0; values beyond the int32 range are clamped.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	f, ok, err := decodeFlexNumber(b)
	if err != nil {
		return err
	}
	if !ok {
		*n = 0
		return nil
	}
	*n = flexInt(int(max(min(math.Trunc(f), math.MaxInt32), math.MinInt32)))
	return nil
}

// flexIndex is a flexInt that only accepts integral values. Anything else
// decodes to -1 so the entry matches no file.
type flexIndex int

func (n *flexIndex) UnmarshalJSON(b []byte) error {
	f, ok, err := decodeFlexNumber(b)
	if err != nil {
		return err
	}
	if !ok || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		*n = -1
		return nil
	}
	*n = flexIndex(int(f))
	return nil
}

// decodeFlexNumber reports ok=false for null, blanks and non-numeric input.
func decodeFlexNumber(b []byte) (float64, bool, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return 0, false, nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, false, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, nil
	}
	return f, true, nil
}

type wireSelection struct {
	Index       *flexIndex `json:"index"`
	IsPdf       bool       `json:"isPdf"`
	SelectMode  string     `json:"selectMode"`
	RangeFrom   flexInt    `json:"rangeFrom"`
	RangeTo     flexInt    `json:"rangeTo"`
	ManualPages flexInt    `json:"manualPages"`
}

// ParseSelections decodes the filesMeta list sent alongside an upload.
// Malformed input yields an empty set; entries without an index or whose
// index falls outside [0, fileCount) are dropped.
func ParseSelections(raw string, fileCount int) SelectionSet {
	set := SelectionSet{}
	if strings.TrimSpace(raw) == "" {
		return set
	}
	var list []wireSelection
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return set
	}
	for _, w := range list {
		if w.Index == nil {
			continue
		}
		idx := int(*w.Index)
		if idx < 0 || idx >= fileCount {
			continue
		}
		set[idx] = FileSelection{
			Index:       idx,
			Paginated:   w.IsPdf,
			Mode:        SelectMode(w.SelectMode),
			From:        int(w.RangeFrom),
			To:          int(w.RangeTo),
			ManualPages: int(w.ManualPages),
		}
	}
	return set
}

// PrintOptions is the configuration that governs cost.
type PrintOptions struct {
	ColorMode ColorMode `json:"colorMode"`
	PaperSize PaperSize `json:"paperSize"`
	Sides     Sides     `json:"sides"`
	Copies    int       `json:"copies"`
}

// PriceQuote is the computed estimate for an order. It is never persisted.
type PriceQuote struct {
	UnitPrice    float64 `json:"unitPrice"`
	TotalPages   int     `json:"totalPages"`
	BillingUnits int     `json:"billingUnits"`
	Copies       int     `json:"copies"`
	PrintingCost float64 `json:"printingCost"`
	DeliveryFee  float64 `json:"deliveryFee"`
	GrandTotal   float64 `json:"grandTotal"`
	Currency     string  `json:"currency"`
}

// OrderItem pairs an uploaded file with the pages it is billed for.
type OrderItem struct {
	File          UploadedFile   `json:"file"`
	DetectedPages int            `json:"detectedPages"`
	BilledPages   int            `json:"billedPages"`
	Manual        bool           `json:"manual"`
	Selection     *FileSelection `json:"selection,omitempty"`
}

// Order is a validated print order, consumed once by the notification step.
type Order struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Mobile      string       `json:"mobile"`
	Address     string       `json:"address"`
	Notes       string       `json:"notes,omitempty"`
	Options     PrintOptions `json:"options"`
	Items       []OrderItem  `json:"items"`
	Quote       PriceQuote   `json:"quote"`
	ClientPages int          `json:"clientPages,omitempty"`
}

// TotalPages is the sum of billed pages across all items.
func (o *Order) TotalPages() int {
	total := 0
	for i := range o.Items {
		total += o.Items[i].BilledPages
	}
	return total
}

// TotalSize is the combined byte size of all uploaded files.
func (o *Order) TotalSize() int64 {
	var total int64
	for i := range o.Items {
		total += o.Items[i].File.Size
	}
	return total
}

// Files returns the uploaded files in order.
func (o *Order) Files() []UploadedFile {
	files := make([]UploadedFile, len(o.Items))
	for i := range o.Items {
		files[i] = o.Items[i].File
	}
	return files
}

// RawOrder holds the submitted form fields before validation.
type RawOrder struct {
	Name      string
	Mobile    string
	Address   string
	Notes     string
	ColorMode string
	PaperSize string
	Sides     string
	Copies    string
	Pages     string
	FilesMeta string
}

// Receipt is the acknowledgment returned once an order is accepted.
type Receipt struct {
	OrderID        uuid.UUID  `json:"orderId"`
	Pages          int        `json:"pages"`
	EstimatedTotal float64    `json:"estimatedTotal"`
	Quote          PriceQuote `json:"quote"`
}

// FilePageCount is the detected page count for one file of a counting request.
type FilePageCount struct {
	Index        int    `json:"index"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"mimetype"`
	Pages        int    `json:"pages"`
}
