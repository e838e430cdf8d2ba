package port

import (
	"context"
	"io"
)

// PutInput encapsulates the parameters needed to store an uploaded file.
type PutInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// TempStorage holds uploaded files for the lifetime of one request.
// Delete must treat a missing object as success.
type TempStorage interface {
	Put(ctx context.Context, input PutInput) error
	Read(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
