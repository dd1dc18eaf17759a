package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3API is the subset of *s3.Client the getter calls.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Getter implements ObjectGetter on S3 or an S3 compatible store.
type S3Getter struct {
	client  s3API
	maxSize int64
}

// NewS3Getter builds the client from the default AWS config chain, overridden by cfg.
func NewS3Getter(ctx context.Context, cfg S3Config) (*S3Getter, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3Getter(client, cfg.MaxObjectSize), nil
}

func newS3Getter(client s3API, maxSize int64) *S3Getter {
	return &S3Getter{client: client, maxSize: maxSize}
}

func (g *S3Getter) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %w", ErrObjectNotFound, err)
		}
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer out.Body.Close()

	if g.maxSize > 0 && aws.ToInt64(out.ContentLength) > g.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrObjectTooLarge, aws.ToInt64(out.ContentLength), g.maxSize)
	}

	reader := io.Reader(out.Body)
	if g.maxSize > 0 {
		reader = io.LimitReader(out.Body, g.maxSize+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	if g.maxSize > 0 && int64(len(body)) > g.maxSize {
		return nil, fmt.Errorf("%w: limit %d", ErrObjectTooLarge, g.maxSize)
	}
	return body, nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}
	return false
}
