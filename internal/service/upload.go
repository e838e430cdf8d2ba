package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	"print4me/internal/domain"
	"print4me/internal/port"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SanitizeFileName reduces a client file name to a safe storage suffix.
func SanitizeFileName(name string) string {
	base := unsafeNameChars.ReplaceAllString(filepath.Base(filepath.ToSlash(name)), "_")
	if base == "" || base == "." || base == ".." {
		return "file"
	}
	return base
}

func storageKey(name string) string {
	return uuid.NewString() + "-" + SanitizeFileName(name)
}

// storeFiles writes every multipart file to temp storage. On failure the
// files stored so far are removed and ErrStorageFailed is returned.
func storeFiles(ctx context.Context, storage port.TempStorage, headers []*multipart.FileHeader) ([]domain.UploadedFile, error) {
	files := make([]domain.UploadedFile, 0, len(headers))
	for _, h := range headers {
		f, err := storeFile(ctx, storage, h)
		if err != nil {
			log.Printf("service.storeFiles: storing %s failed: %v", h.Filename, err)
			cleanup(ctx, storage, files)
			return nil, fmt.Errorf("%w: %s", domain.ErrStorageFailed, h.Filename)
		}
		files = append(files, f)
	}
	return files, nil
}

func storeFile(ctx context.Context, storage port.TempStorage, h *multipart.FileHeader) (domain.UploadedFile, error) {
	src, err := h.Open()
	if err != nil {
		return domain.UploadedFile{}, fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	file := domain.UploadedFile{
		OriginalName: h.Filename,
		ContentType:  h.Header.Get("Content-Type"),
		Size:         h.Size,
		StorageKey:   storageKey(h.Filename),
	}
	if err := storage.Put(ctx, port.PutInput{
		Key:         file.StorageKey,
		Body:        src,
		ContentType: file.ContentType,
		Size:        file.Size,
	}); err != nil {
		return domain.UploadedFile{}, err
	}
	return file, nil
}

// cleanup deletes every stored file. Failures are logged and otherwise ignored.
func cleanup(ctx context.Context, storage port.TempStorage, files []domain.UploadedFile) {
	ctx = context.WithoutCancel(ctx)
	for _, f := range files {
		if err := storage.Delete(ctx, f.StorageKey); err != nil {
			log.Printf("service.cleanup: deleting %s failed: %v", f.StorageKey, err)
		}
	}
}
