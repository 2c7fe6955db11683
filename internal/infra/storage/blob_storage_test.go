package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"photoverify/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStorage_PutAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStorage(bucket, "")
	ctx := context.Background()
	key := "submissions/justsmashed/classic/cut_in_half/p1/l1/1700000000000_u1_photo.jpg"

	require.NoError(t, store.Put(ctx, key, "image/jpeg", strings.NewReader("jpeg-bytes")))

	reader, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", contentType)

	_, _, err = store.Open(ctx, "submissions/missing.jpg")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestBucketStorage_URL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	ctx := context.Background()

	public := NewBucketStorage(bucket, "https://cdn.example.com/photos/")
	url, err := public.URL(ctx, "submissions/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photos/submissions/a.jpg", url)

	private := NewBucketStorage(bucket, "")
	_, err = private.URL(ctx, "submissions/a.jpg")
	assert.ErrorIs(t, err, service.ErrURLUnsupported)
}

func TestBucketStorage_PutIsWriteOnce(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStorage(bucket, "")
	ctx := context.Background()
	key := "submissions/b1/i1/r1/p1/l1/1700000000000_u1_photo.jpg"

	require.NoError(t, store.Put(ctx, key, "image/jpeg", strings.NewReader("first")))

	err := store.Put(ctx, key, "image/jpeg", strings.NewReader("second"))
	assert.ErrorIs(t, err, service.ErrObjectExists)

	reader, _, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "first", string(body))
}

func TestBucketStorage_URLEscapesSegments(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStorage(bucket, "https://cdn.example.com/photos")

	url, err := store.URL(context.Background(), "submissions/b1/i1/r1/p1/l1/1700000000000_u1_my photo #2?.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photos/submissions/b1/i1/r1/p1/l1/1700000000000_u1_my%20photo%20%232%3F.jpg", url)
}
