package storage

import (
	"bytes"
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds settings for the S3-compatible object store used for
// candidate avatars and uploaded CV source files.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Endpoint overrides the AWS endpoint for S3-compatible providers
	// (MinIO, Wasabi). Empty means plain AWS S3.
	Endpoint string
	// PublicBaseURL is the prefix for publicly served objects.
	PublicBaseURL string
}

// Uploader wraps the S3 client with bucket-scoped upload helpers.
type Uploader struct {
	client *s3.Client
	cfg    Config
}

func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = awsv2.String(cfg.Endpoint)
			o.UsePathStyle = true // compatible providers require path-style
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &Uploader{client: client, cfg: cfg}, nil
}

// Upload stores the object and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awsv2.String(u.cfg.Bucket),
		Key:         awsv2.String(key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if u.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", u.cfg.PublicBaseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key), nil
}

// Ping checks bucket access by listing at most one object.
func (u *Uploader) Ping(ctx context.Context) error {
	_, err := u.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  awsv2.String(u.cfg.Bucket),
		MaxKeys: awsv2.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", u.cfg.Bucket, err)
	}
	return nil
}
