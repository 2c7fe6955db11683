// Package storage stores uploaded photos in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"photoverify/config"
	"photoverify/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// bucketStorage implements service.BlobStorage on a portable bucket.
type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the bucket named by storage.bucketUrl
func NewBlobStorage(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob storage opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBucketStorage wraps an opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.BlobStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put writes the object once. An existing key is reported as service.ErrObjectExists.
func (s *bucketStorage) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType, IfNotExist: true})
	if err != nil {
		return s.writeError(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return s.writeError(err, "failed to write %s", key)
	}

	if err := writer.Close(); err != nil {
		return s.writeError(err, "failed to commit %s", key)
	}

	return nil
}

func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *bucketStorage) writeError(err error, format, key string) error {
	if gcerrors.Code(err) == gcerrors.FailedPrecondition {
		return errors.Wrap(service.ErrObjectExists, key)
	}

	return errors.Wrapf(err, format, key)
}

// URL joins the public base URL with the escaped key segments.
func (s *bucketStorage) URL(_ context.Context, key string) (string, error) {
	if s.publicBaseURL == "" {
		return "", service.ErrURLUnsupported
	}

	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/"), nil
}
