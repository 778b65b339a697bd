package user

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
)

// BlobStore is the upload-and-get-URL contract of the external file storage.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (string, error)
}

// DiskBlobStore keeps blobs on the local filesystem and serves them under a
// static base URL. It stands in for the hosted storage the deployment uses.
type DiskBlobStore struct {
	dir     string
	baseURL string
}

func NewDiskBlobStore(dir, baseURL string) (*DiskBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &DiskBlobStore{dir: dir, baseURL: baseURL}, nil
}

func (s *DiskBlobStore) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(key))

	f, err := os.Create(path)

	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}

	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	blobURL, err := url.JoinPath(s.baseURL, filepath.Base(key))

	if err != nil {
		return "", fmt.Errorf("failed to build blob URL: %w", err)
	}

	return blobURL, nil
}
