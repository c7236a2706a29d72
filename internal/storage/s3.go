package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrObjectNotFound is returned when a key does not exist in the bucket
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore reads the dataset and style sheets from a bucket
type ObjectStore interface {
	DownloadFile(ctx context.Context, key string) ([]byte, error)
	GenerateDownloadURL(ctx context.Context, key string) (string, error)
}

// Driver names accepted by NewObjectStore
const (
	DriverS3    = "s3"
	DriverMinio = "minio"
)

// DefaultURLExpiry is the lifetime of a pre-signed URL when S3Config.URLExpiry is zero
const DefaultURLExpiry = 24 * time.Hour

// S3Config holds configuration for the object store
type S3Config struct {
	Driver    string
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	URLExpiry time.Duration
}

// NewObjectStore builds the store selected by cfg.Driver
func NewObjectStore(cfg S3Config) (ObjectStore, error) {
	switch cfg.Driver {
	case "", DriverS3:
		return NewS3Service(cfg)
	case DriverMinio:
		return NewMinioService(cfg)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

type s3Service struct {
	client    *s3.Client
	bucket    string
	urlExpiry time.Duration
}

// NewS3Service creates an S3 backed store. A non-empty Endpoint switches to
// path-style addressing for S3-compatible servers.
func NewS3Service(cfg S3Config) (ObjectStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}

	region := cfg.Region
	if cfg.Endpoint != "" || region == "" {
		region = "us-east-1"
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "http://" + endpoint
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = &endpoint
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	expiry := cfg.URLExpiry
	if expiry == 0 {
		expiry = DefaultURLExpiry
	}

	return &s3Service{
		client:    client,
		bucket:    cfg.Bucket,
		urlExpiry: expiry,
	}, nil
}

// GenerateDownloadURL generates a pre-signed URL for downloading an object
func (s *s3Service) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	presignClient := s3.NewPresignClient(s.client)

	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.urlExpiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate download URL: %w", err)
	}

	return request.URL, nil
}

// DownloadFile downloads an object
func (s *s3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}
