package storage

import (
	"context"
	"io"
)

// StorageService stores uploaded images and hands back permanent URLs.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}
