package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"print4me/internal/domain"
	"print4me/internal/port"
	"print4me/internal/validator"
)

// PageService defines the page counting contract used by clients to preview
// page totals before submitting an order.
type PageService interface {
	CountOne(ctx context.Context, header *multipart.FileHeader) (*domain.FilePageCount, error)
	CountMany(ctx context.Context, headers []*multipart.FileHeader) ([]domain.FilePageCount, int, error)
}

type pageService struct {
	counter port.PageCounter
	storage port.TempStorage
	limits  validator.Limits
}

// NewPageService creates a new PageService implementation.
func NewPageService(counter port.PageCounter, storage port.TempStorage, limits validator.Limits) PageService {
	return &pageService{counter: counter, storage: storage, limits: limits}
}

func (s *pageService) CountOne(ctx context.Context, header *multipart.FileHeader) (*domain.FilePageCount, error) {
	if header == nil {
		return nil, domain.ErrMissingFile
	}
	counts, _, err := s.count(ctx, []*multipart.FileHeader{header})
	if err != nil {
		return nil, err
	}
	return &counts[0], nil
}

func (s *pageService) CountMany(ctx context.Context, headers []*multipart.FileHeader) ([]domain.FilePageCount, int, error) {
	if len(headers) == 0 {
		return nil, 0, domain.ErrMissingFile
	}
	if len(headers) > s.limits.MaxFiles {
		return nil, 0, domain.ErrTooManyFiles
	}
	return s.count(ctx, headers)
}

func (s *pageService) count(ctx context.Context, headers []*multipart.FileHeader) ([]domain.FilePageCount, int, error) {
	for _, h := range headers {
		if h.Size > s.limits.MaxFileSize {
			return nil, 0, fmt.Errorf("%w: %s", domain.ErrFileTooLarge, h.Filename)
		}
		if !domain.IsAllowedUpload(h.Header.Get("Content-Type"), h.Filename) {
			return nil, 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, h.Filename)
		}
	}

	files, err := storeFiles(ctx, s.storage, headers)
	if err != nil {
		return nil, 0, err
	}
	defer cleanup(ctx, s.storage, files)

	inputs := make([]port.CountInput, len(files))
	for i, f := range files {
		inputs[i] = port.CountInput{FileName: f.OriginalName, ContentType: f.ContentType}
		data, err := s.storage.Read(ctx, f.StorageKey)
		if err != nil {
			log.Printf("pageService.count: reading %s failed: %v", f.OriginalName, err)
			continue
		}
		inputs[i].Data = data
	}

	pages := s.counter.CountAll(ctx, inputs)

	results := make([]domain.FilePageCount, len(files))
	total := 0
	for i, f := range files {
		results[i] = domain.FilePageCount{
			Index:        i,
			OriginalName: f.OriginalName,
			ContentType:  f.ContentType,
			Pages:        pages[i],
		}
		total += pages[i]
	}
	return results, total, nil
}
