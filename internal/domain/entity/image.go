package entity

import "time"

// Image records metadata for a picture uploaded to the external image host.
type Image struct {
	ID               string    `json:"id"`
	ImageURL         string    `json:"imageUrl"`     // Full-size URL on the image host.
	ThumbnailURL     string    `json:"thumbnailUrl"` // Thumbnail URL on the image host.
	DeleteURL        string    `json:"-"`            // Host-side delete link, never exposed to clients.
	OriginalFileName string    `json:"originalFileName,omitempty"`
	MimeType         string    `json:"mimeType"`
	FileSize         int64     `json:"fileSize"`
	CreatedAt        time.Time `json:"createdAt"`
}
