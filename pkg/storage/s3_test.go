package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockS3API is a mock implementation of s3API for testing.
type mockS3API struct {
	getObjectFunc func(ctx context.Context, params *s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

func (m *mockS3API) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return m.getObjectFunc(ctx, params)
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestS3Getter_GetObject(t *testing.T) {
	// Given
	body := &trackingBody{Reader: strings.NewReader(`{"id":"1"}`)}
	api := &mockS3API{getObjectFunc: func(_ context.Context, params *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		assert.Equal(t, "uploads", aws.ToString(params.Bucket))
		assert.Equal(t, "orders/a b+c.json", aws.ToString(params.Key))
		return &s3.GetObjectOutput{Body: body, ContentLength: aws.Int64(10)}, nil
	}}

	// When: the key is passed through verbatim
	got, err := newS3Getter(api, 1024).GetObject(context.Background(), "uploads", "orders/a b+c.json")

	// Then
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(got))
	assert.True(t, body.closed)
}

func TestS3Getter_NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "typed no such key", err: &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}},
		{name: "typed not found", err: &types.NotFound{}},
		{name: "generic api error", err: &smithy.GenericAPIError{Code: "NoSuchKey", Message: "missing"}},
		{name: "missing bucket", err: &smithy.GenericAPIError{Code: "NoSuchBucket"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockS3API{getObjectFunc: func(context.Context, *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
				return nil, tt.err
			}}

			_, err := newS3Getter(api, 0).GetObject(context.Background(), "uploads", "missing.json")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrObjectNotFound)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestS3Getter_OtherError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
	api := &mockS3API{getObjectFunc: func(context.Context, *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return nil, apiErr
	}}

	_, err := newS3Getter(api, 0).GetObject(context.Background(), "uploads", "secret.json")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrObjectNotFound)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "failed to get object from S3")
}

func TestS3Getter_SizeLimit(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		contentLength *int64
		maxSize       int64
		wantErr       error
	}{
		{name: "declared length over limit", body: "0123456789", contentLength: aws.Int64(10), maxSize: 4, wantErr: ErrObjectTooLarge},
		{name: "undeclared length over limit", body: "0123456789", contentLength: nil, maxSize: 4, wantErr: ErrObjectTooLarge},
		{name: "exactly at limit", body: "0123", contentLength: aws.Int64(4), maxSize: 4},
		{name: "no limit", body: "0123456789", contentLength: aws.Int64(10), maxSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockS3API{getObjectFunc: func(context.Context, *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
				return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(tt.body)), ContentLength: tt.contentLength}, nil
			}}

			got, err := newS3Getter(api, tt.maxSize).GetObject(context.Background(), "uploads", "big.bin")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(got))
		})
	}
}

func TestS3Getter_ReadError(t *testing.T) {
	readErr := errors.New("connection reset")
	api := &mockS3API{getObjectFunc: func(context.Context, *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return &s3.GetObjectOutput{Body: io.NopCloser(&failingReader{err: readErr})}, nil
	}}

	_, err := newS3Getter(api, 0).GetObject(context.Background(), "uploads", "file.bin")

	assert.ErrorIs(t, err, readErr)
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }
