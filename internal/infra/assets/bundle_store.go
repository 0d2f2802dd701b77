// Package assets serves the downloadable application bundle from a blob bucket.
package assets

import (
	"context"
	"io"

	"souk/config"
	"souk/internal/domain/lifecycle"
	"souk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcerrors"
)

const bundleContentType = "application/vnd.android.package-archive"

// blobBundleStore implements BundleStore on top of a gocloud.dev bucket
type blobBundleStore struct {
	bucket       *blob.Bucket
	objectKey    string
	downloadName string
}

// NewBlobBundleStore opens the configured bucket and registers its shutdown hook
func NewBlobBundleStore(lc fx.Lifecycle, cfg *config.Config) (service.BundleStore, error) {
	if cfg.Assets == nil || cfg.Assets.BucketURL == "" {
		return nil, errors.New("assets bucket URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Assets.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open assets bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobBundleStore{
		bucket:       bucket,
		objectKey:    cfg.Assets.APKObject,
		downloadName: cfg.Assets.DownloadName,
	}, nil
}

// Fetch opens the bundle for streaming. The caller closes the reader
func (s *blobBundleStore) Fetch(ctx context.Context) (io.ReadCloser, *service.BundleInfo, error) {
	reader, err := s.bucket.NewReader(ctx, s.objectKey, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrBundleNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to open app bundle")
	}

	info := &service.BundleInfo{
		Name:        s.downloadName,
		ContentType: bundleContentType,
		Size:        reader.Size(),
	}

	return reader, info, nil
}
