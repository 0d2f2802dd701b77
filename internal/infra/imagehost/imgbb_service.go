// Package imagehost uploads pictures to the ImgBB hosting service.
package imagehost

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"souk/config"
	"souk/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultEndpoint = "https://api.imgbb.com/1/upload"

// imgbbService implements ImageHostService against the ImgBB upload API
type imgbbService struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// imgbbResponse is the subset of the ImgBB upload response the service reads.
type imgbbResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL   string `json:"url"`
		Title string `json:"title"`
		Size  int64  `json:"size"`
		Thumb struct {
			URL string `json:"url"`
		} `json:"thumb"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
}

// NewImgBBService creates an image host client for the configured ImgBB account
func NewImgBBService(cfg *config.Config) service.ImageHostService {
	endpoint := defaultEndpoint
	apiKey := ""
	if cfg.ImgBB != nil {
		apiKey = cfg.ImgBB.APIKey
		if cfg.ImgBB.Endpoint != "" {
			endpoint = cfg.ImgBB.Endpoint
		}
	}

	return &imgbbService{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload sends base64-encoded image data to ImgBB and returns the hosted record
func (s *imgbbService) Upload(ctx context.Context, base64Data, name string) (*service.HostedImage, error) {
	form := url.Values{}
	form.Set("key", s.apiKey)
	form.Set("image", base64Data)
	if name != "" {
		form.Set("name", name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "image host request failed")
	}
	defer resp.Body.Close()

	var body imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode image host response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		return nil, errors.Errorf("image host returned non-success status: %d", resp.StatusCode)
	}

	return &service.HostedImage{
		URL:          body.Data.URL,
		ThumbnailURL: body.Data.Thumb.URL,
		DeleteURL:    body.Data.DeleteURL,
		Title:        body.Data.Title,
		Size:         body.Data.Size,
	}, nil
}
