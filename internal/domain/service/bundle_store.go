package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrBundleNotFound is returned when the app bundle is absent from the store.
var ErrBundleNotFound = errors.New("app bundle not found")

// BundleInfo describes the downloadable application bundle.
type BundleInfo struct {
	Name        string // Filename offered to the client.
	ContentType string
	Size        int64
}

// BundleStore serves the downloadable application bundle.
type BundleStore interface {
	// Fetch opens the bundle for streaming. The caller closes the reader.
	Fetch(ctx context.Context) (io.ReadCloser, *BundleInfo, error)
}
