package domain

import (
	"path/filepath"
	"strings"
)

// Order limits.
const (
	MaxFilesPerOrder = 5
	MaxFileSizeBytes = 25 * 1024 * 1024
	MinCopies        = 1
	MaxCopies        = 100
	MaxTotalPages    = 10000
)

// DeliveryFee is the flat delivery charge added to every quote, in Currency units.
const DeliveryFee = 25.0

// Currency is the currency every quote is expressed in.
const Currency = "EGP"

// ColorMode selects color or monochrome output.
type ColorMode string

const (
	ColorModeColor      ColorMode = "color"
	ColorModeMonochrome ColorMode = "monochrome"
)

// colorModeAliases maps accepted wire values to a ColorMode. "bw" is what the
// mobile client sends for monochrome.
var colorModeAliases = map[string]ColorMode{
	"color":      ColorModeColor,
	"monochrome": ColorModeMonochrome,
	"bw":         ColorModeMonochrome,
}

// ParseColorMode returns the ColorMode for a wire value.
func ParseColorMode(s string) (ColorMode, bool) {
	m, ok := colorModeAliases[s]
	return m, ok
}

// PaperSize is recorded on the order but does not affect price.
type PaperSize string

const (
	PaperSizeA4 PaperSize = "A4"
	PaperSizeA3 PaperSize = "A3"
)

// AllowedPaperSizes lists the accepted paper sizes.
var AllowedPaperSizes = map[PaperSize]bool{
	PaperSizeA4: true,
	PaperSizeA3: true,
}

// Sides selects single or double sided printing.
type Sides string

const (
	SidesSingle Sides = "single"
	SidesDouble Sides = "double"
)

// AllowedSides lists the accepted sides values.
var AllowedSides = map[Sides]bool{
	SidesSingle: true,
	SidesDouble: true,
}

// SelectMode says how much of a paginated file the client wants billed.
type SelectMode string

const (
	SelectWhole SelectMode = "whole"
	SelectRange SelectMode = "range"
)

// DocumentKind groups file types by how their pages are counted.
type DocumentKind string

const (
	KindPDF         DocumentKind = "pdf"
	KindSpreadsheet DocumentKind = "spreadsheet"
	KindOther       DocumentKind = "other"
)

// Paginated reports whether pages of this kind are detected by parsing.
func (k DocumentKind) Paginated() bool {
	return k == KindPDF || k == KindSpreadsheet
}

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeDOC  = "application/msword"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	// ContentTypeOctetStream is what some pickers send when the type is unknown.
	ContentTypeOctetStream = "application/octet-stream"
)

// AllowedContentTypes is the set of MIME types accepted for upload.
var AllowedContentTypes = map[string]bool{
	ContentTypePDF:  true,
	ContentTypeDOC:  true,
	ContentTypeDOCX: true,
	ContentTypeXLSX: true,
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/bmp":     true,
	"image/heic":    true,
	"image/heif":    true,
}

// AllowedExtensions maps file extensions (without dot) to their document kind.
var AllowedExtensions = map[string]DocumentKind{
	"pdf":  KindPDF,
	"xlsx": KindSpreadsheet,
	"doc":  KindOther,
	"docx": KindOther,
	"jpg":  KindOther,
	"jpeg": KindOther,
	"png":  KindOther,
	"gif":  KindOther,
	"webp": KindOther,
	"bmp":  KindOther,
	"heic": KindOther,
	"heif": KindOther,
}

func extensionOf(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// KindOf classifies a file by its declared content type, falling back to the
// filename extension.
func KindOf(contentType, filename string) DocumentKind {
	switch contentType {
	case ContentTypePDF:
		return KindPDF
	case ContentTypeXLSX:
		return KindSpreadsheet
	}
	if kind, ok := AllowedExtensions[extensionOf(filename)]; ok {
		return kind
	}
	return KindOther
}

// IsAllowedUpload reports whether a file may be uploaded, by MIME type or extension.
func IsAllowedUpload(contentType, filename string) bool {
	if AllowedContentTypes[contentType] || contentType == ContentTypeOctetStream {
		return true
	}
	_, ok := AllowedExtensions[extensionOf(filename)]
	return ok
}
