package adapter

import (
	"context"
	"io"
)

// ExportSink stores a rendered export artifact and returns a location
// the caller can hand back to the client.
type ExportSink interface {
	// Store persists the artifact under the given filename and returns
	// its storage path.
	Store(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
