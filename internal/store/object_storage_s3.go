// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/edims/internal/config"
	"github.com/MKhiriev/edims/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 client used by [s3ObjectStorage].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3ObjectStorage is the [ObjectStorage] implementation for S3-compatible
// buckets (Google Cloud Storage interoperability API, MinIO, AWS S3).
type s3ObjectStorage struct {
	client        s3API
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewS3ObjectStorage builds an S3 client for cfg and returns the
// [ObjectStorage] on top of it. Static credentials are used when both keys
// are configured; otherwise the default AWS credential chain applies.
func NewS3ObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		// GCS rejects the CRC checksums newer SDKs add by default.
		awsconfig.WithRequestChecksumCalculation(aws.RequestChecksumCalculationWhenRequired),
		awsconfig.WithResponseChecksumValidation(aws.ResponseChecksumValidationWhenRequired),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ObjectStorage").Msg("error loading object storage config")
		return nil, fmt.Errorf("error loading object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Info().
		Str("func", "NewS3ObjectStorage").
		Str("bucket", cfg.Bucket).
		Str("endpoint", cfg.Endpoint).
		Msg("object storage client created")

	return newS3ObjectStorage(client, cfg.Bucket, cfg.PublicBaseURL, log), nil
}

func newS3ObjectStorage(client s3API, bucket, publicBaseURL string, log *logger.Logger) *s3ObjectStorage {
	return &s3ObjectStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        log,
	}
}

// Upload stores body under key and returns the public URL
// <publicBaseURL>/<bucket>/<key>.
func (s *s3ObjectStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	publicURL, err := s.publicURL(key)
	if err != nil {
		log.Err(err).
			Str("func", "*s3ObjectStorage.Upload").
			Str("key", key).
			Msg("failed to build public URL")
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).
			Str("func", "*s3ObjectStorage.Upload").
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object")
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	return publicURL, nil
}

// Delete removes the object stored under key.
func (s *s3ObjectStorage) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).
			Str("func", "*s3ObjectStorage.Delete").
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to delete object")
		return fmt.Errorf("%w: %w", ErrDeletingObject, err)
	}

	return nil
}

// publicURL escapes every segment of key, which carries the client's
// filename verbatim, so that the URL decodes back to the stored key.
func (s *s3ObjectStorage) publicURL(key string) (string, error) {
	base, err := url.Parse(s.publicBaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid public base URL: %w", err)
	}

	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return base.JoinPath(append([]string{url.PathEscape(s.bucket)}, segments...)...).String(), nil
}
