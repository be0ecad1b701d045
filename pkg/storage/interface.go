package storage

import (
	"context"
	"io"
	"time"
)

type UploadRequest struct {
	Key         string
	Reader      io.Reader
	ContentType string
	Size        int64
}

type UploadResponse struct {
	Key      string
	URL      string
	Size     int64
	Location string
}

type FileInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	URL          string
}

type Storage interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	FileExists(ctx context.Context, key string) (bool, error)
	GetFileInfo(ctx context.Context, key string) (*FileInfo, error)
}
