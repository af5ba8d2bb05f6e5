package inventory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"

	"card-drop/internal/infra"
	"card-drop/internal/infra/snapshot"
	"card-drop/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Source lists image objects under a prefix. Item ids are the object names
// with the prefix stripped.
type S3Source struct {
	client     snapshot.ObjectAPI
	bucket     string
	prefix     string
	extensions map[string]bool
	logger     *slog.Logger
}

func NewS3Source(client snapshot.ObjectAPI, bucket, prefix string, extensions []string, logger *slog.Logger) *S3Source {
	return &S3Source{
		client:     client,
		bucket:     bucket,
		prefix:     prefix,
		extensions: extensionSet(extensions),
		logger:     logger,
	}
}

func (s *S3Source) ListItemIDs(ctx context.Context) ([]string, error) {
	var ids []string
	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(s.prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to list inventory objects", err)
		}
		for _, obj := range out.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			if s.extensions[strings.ToLower(path.Ext(name))] {
				ids = append(ids, name)
			}
		}
		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			break
		}
		token = out.NextContinuationToken
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *S3Source) Open(ctx context.Context, itemID string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + itemID),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "item object not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to get item object", err)
	}
	return out.Body, nil
}

var _ shared.ItemSource = (*S3Source)(nil)
