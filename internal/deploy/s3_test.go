package deploy

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	data, _ := io.ReadAll(params.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Bucket_Publish(t *testing.T) {
	putter := &fakePutter{}
	b := NewS3Bucket(putter, S3Config{Bucket: "sites", Prefix: "/jane/", PublicBaseURL: "https://cdn.example.com/"}, nil)

	result, err := b.Publish(context.Background(), Site{HTML: "<html></html>"})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/jane/index.html", result.URL)
	assert.Equal(t, "sites", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "jane/index.html", aws.ToString(putter.input.Key))
	assert.Equal(t, "text/html; charset=utf-8", aws.ToString(putter.input.ContentType))
	assert.Equal(t, "<html></html>", putter.body)
}

func TestS3Bucket_KeyWithoutPrefix(t *testing.T) {
	assert.Equal(t, "index.html", (&S3Bucket{}).Key())
}

func TestS3Bucket_Errors(t *testing.T) {
	_, err := NewS3Bucket(&fakePutter{}, S3Config{PublicBaseURL: "https://x"}, nil).Publish(context.Background(), Site{})
	assert.ErrorContains(t, err, "bucket is required")

	_, err = NewS3Bucket(&fakePutter{}, S3Config{Bucket: "b"}, nil).Publish(context.Background(), Site{})
	assert.ErrorContains(t, err, "public base URL")

	boom := errors.New("access denied")
	_, err = NewS3Bucket(&fakePutter{err: boom}, S3Config{Bucket: "b", PublicBaseURL: "https://x"}, nil).Publish(context.Background(), Site{})
	assert.ErrorIs(t, err, boom)
}
