package service

import "context"

// HostedImage describes a picture stored on the external image host.
type HostedImage struct {
	URL          string // Full-size image URL.
	ThumbnailURL string // Thumbnail URL.
	DeleteURL    string // Host-side delete link.
	Title        string // Host-assigned title.
	Size         int64  // Stored size in bytes.
}

// ImageHostService uploads pictures to the external image host.
type ImageHostService interface {
	// Upload sends base64-encoded image data to the host and returns its record.
	Upload(ctx context.Context, base64Data, name string) (*HostedImage, error)
}
