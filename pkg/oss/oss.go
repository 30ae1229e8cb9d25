package oss

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const location = "us-east-1" // MinIO默认区域

// UploadResult is the durable location of an uploaded object.
type UploadResult struct {
	Bucket string
	Object string
	Url    string
}

// Storage uploads local media files and removes stored objects.
type Storage interface {
	UploadFile(ctx context.Context, bucket, object, localPath, contentType string) (*UploadResult, error)
	Remove(ctx context.Context, bucket, object string) error
}

type MinioStorage struct {
	client     *minio.Client
	publicHost string
	useSSL     bool
}

func NewMinioStorage(client *minio.Client, publicHost string, useSSL bool) *MinioStorage {
	return &MinioStorage{client: client, publicHost: publicHost, useSSL: useSSL}
}

func (s *MinioStorage) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.WithMessage(err, "check bucket")
	}
	if exists {
		return nil
	}
	if err = s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: location}); err != nil {
		return errors.WithMessage(err, "create bucket")
	}
	return nil
}

func (s *MinioStorage) UploadFile(ctx context.Context, bucket, object, localPath, contentType string) (*UploadResult, error) {
	if err := s.ensureBucket(ctx, bucket); err != nil {
		return nil, err
	}
	info, err := s.client.FPutObject(ctx, bucket, object, localPath, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.WithMessagef(err, "put object %s/%s", bucket, object)
	}
	hlog.CtxInfof(ctx, "uploaded %s/%s (%d bytes)", bucket, object, info.Size)
	return &UploadResult{Bucket: bucket, Object: object, Url: s.objectUrl(bucket, object)}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, bucket, object string) error {
	if object == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return errors.WithMessagef(err, "remove object %s/%s", bucket, object)
	}
	return nil
}

func (s *MinioStorage) objectUrl(bucket, object string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.publicHost, bucket, object)
}
