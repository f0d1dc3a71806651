package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
)

// LocalImageStorage writes uploads under basePath and serves them from publicURL.
type LocalImageStorage struct {
	basePath  string
	publicURL string
}

var _ contract.IImageStorage = (*LocalImageStorage)(nil)

// NewLocalImageStorage creates basePath if needed. publicURL is the prefix the
// router serves basePath under, e.g. http://localhost:8080/uploads.
func NewLocalImageStorage(basePath, publicURL string) (*LocalImageStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStorage{basePath: basePath, publicURL: publicURL}, nil
}

// Save writes r to basePath/filename. filename must be a bare name.
func (s *LocalImageStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.basePath, filename)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return s.publicURL + "/" + filename, nil
}
