package snapshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"card-drop/internal/infra"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectAPI is the subset of the S3 client the snapshot and inventory code use.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Store keeps the document as a single object.
type S3Store struct {
	client ObjectAPI
	bucket string
	key    string
	logger *slog.Logger
}

func NewS3Store(client ObjectAPI, bucket, key string, logger *slog.Logger) *S3Store {
	return &S3Store{client: client, bucket: bucket, key: key, logger: logger}
}

func (s *S3Store) Load(ctx context.Context) (*Document, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "snapshot object not found", nil)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to get snapshot object", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to read snapshot object", err)
	}
	return Decode(s.logger, data)
}

func (s *S3Store) Save(ctx context.Context, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode snapshot", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to put snapshot object", err)
	}
	return nil
}

var _ Backend = (*S3Store)(nil)
