package export

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rukun-warga/backend/internal/application/adapter"
)

// localSink implements adapter.ExportSink on the local filesystem.
type localSink struct {
	dir string
}

// NewLocalSink creates an export sink that stores artifacts under dir.
func NewLocalSink(dir string) adapter.ExportSink {
	return &localSink{
		dir: dir,
	}
}

// Store persists the artifact and returns its path.
func (s *localSink) Store(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path, nil
}
