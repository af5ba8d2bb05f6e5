//go:build unit

package snapshot_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"card-drop/internal/infra"
	"card-drop/internal/infra/snapshot"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryBucket is an in-memory stand-in for a single S3 bucket.
type memoryBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newMemoryBucket() *memoryBucket {
	return &memoryBucket{objects: make(map[string][]byte)}
}

func (b *memoryBucket) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (b *memoryBucket) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if b.putErr != nil {
		return nil, b.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (b *memoryBucket) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := &s3.ListObjectsV2Output{}
	for k := range b.objects {
		if in.Prefix == nil || bytes.HasPrefix([]byte(k), []byte(*in.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
		}
	}
	return out, nil
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()

	t.Run("missing object is not found", func(t *testing.T) {
		store := snapshot.NewS3Store(newMemoryBucket(), "bucket", "snap.json", discardLogger())
		_, err := store.Load(ctx)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("round trip", func(t *testing.T) {
		store := snapshot.NewS3Store(newMemoryBucket(), "bucket", "snap.json", discardLogger())
		want := sampleDocument()

		require.NoError(t, store.Save(ctx, want))
		got, err := store.Load(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("document mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("put failure is a storage failure", func(t *testing.T) {
		bucket := newMemoryBucket()
		bucket.putErr = errors.New("503 slow down")
		store := snapshot.NewS3Store(bucket, "bucket", "snap.json", discardLogger())

		err := store.Save(ctx, sampleDocument())
		assert.True(t, infra.IsKind(err, infra.KindStorageFailure))
	})
}
