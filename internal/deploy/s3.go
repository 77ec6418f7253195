package deploy

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectPutter is the subset of the S3 client used for publishing
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config describes an S3 compatible bucket (AWS or Cloudflare R2)
type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// Validate checks the settings needed to publish
func (c S3Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("S3 bucket is required")
	}
	if c.PublicBaseURL == "" {
		return fmt.Errorf("S3 public base URL is required")
	}
	return nil
}

// NewS3Client builds a client from static credentials when provided, else the default chain.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// S3Bucket publishes index.html into a bucket served as a static site
type S3Bucket struct {
	Client ObjectPutter
	Config S3Config
	Logger *zap.Logger
}

// NewS3Bucket returns a publisher for the configured bucket
func NewS3Bucket(client ObjectPutter, cfg S3Config, logger *zap.Logger) *S3Bucket {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3Bucket{Client: client, Config: cfg, Logger: logger}
}

// Key returns the object key for the portfolio
func (b *S3Bucket) Key() string {
	prefix := strings.Trim(b.Config.Prefix, "/")
	if prefix == "" {
		return IndexFile
	}
	return path.Join(prefix, IndexFile)
}

// Publish uploads the site HTML
func (b *S3Bucket) Publish(ctx context.Context, site Site) (*Result, error) {
	if err := b.Config.Validate(); err != nil {
		return nil, err
	}
	key := b.Key()
	_, err := b.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.Config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(site.HTML)),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload portfolio to S3: %w", err)
	}

	url := strings.TrimRight(b.Config.PublicBaseURL, "/") + "/" + key
	if b.Logger != nil {
		b.Logger.Info("portfolio uploaded", zap.String("bucket", b.Config.Bucket), zap.String("key", key))
	}
	return &Result{URL: url}, nil
}
