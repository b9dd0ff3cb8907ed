package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const pdfContentType = "application/pdf"

// MinIOConfig describes the bucket resume files are kept in.
type MinIOConfig struct {
	Endpoint         string
	AccessKeyID      string
	SecretAccessKey  string
	Bucket           string
	Region           string
	UseSSL           bool
	AutoCreateBucket bool
}

// MinIOFileStore keeps resume files in an S3-compatible bucket.
type MinIOFileStore struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOFileStore connects to the bucket, creating it when allowed.
func NewMinIOFileStore(ctx context.Context, cfg MinIOConfig) (*MinIOFileStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if !cfg.AutoCreateBucket {
			return nil, fmt.Errorf("bucket %q does not exist (auto create disabled)", cfg.Bucket)
		}
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &MinIOFileStore{client: client, bucketName: cfg.Bucket}, nil
}

func (s *MinIOFileStore) Save(ctx context.Context, name string, data []byte) error {
	if err := ValidateFileName(name); err != nil {
		return err
	}
	opts := minio.PutObjectOptions{ContentType: pdfContentType}
	if _, err := s.client.PutObject(ctx, s.bucketName, name, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("put object %q: %w", name, err)
	}
	return nil
}

func (s *MinIOFileStore) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	if err := ValidateFileName(name); err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", name, err)
	}
	// GetObject is lazy; Stat surfaces a missing key.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if IsNoSuchKey(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("stat object %q: %w", name, err)
	}
	return obj, nil
}

func (s *MinIOFileStore) Remove(ctx context.Context, name string) error {
	if err := ValidateFileName(name); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, name, minio.RemoveObjectOptions{}); err != nil {
		if IsNoSuchKey(err) {
			return nil
		}
		return fmt.Errorf("remove object %q: %w", name, err)
	}
	return nil
}

// IsNoSuchKey reports whether err means the object does not exist.
func IsNoSuchKey(err error) bool {
	if err == nil {
		return false
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch strings.ToLower(strings.TrimSpace(minioErr.Code)) {
		case "nosuchkey", "notfound":
			return true
		}
	}
	return minio.ToErrorResponse(err).StatusCode == 404
}
