// Package storage keeps generated documents in an S3-compatible bucket.
// AWS S3, MinIO and RustFS all work; the last two need UsePathStyle.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/flexo/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	defaultRegion  = "us-east-1"
	defaultLinkTTL = 15 * time.Minute
)

var (
	ErrEmptyKey       = errors.New("storage key is required")
	ErrNoConfig       = errors.New("storage configuration is required")
	ErrNoBucket       = errors.New("storage bucket is required")
	ErrHalfCredential = errors.New("storage secret access key is required with an access key id")
)

// Archive stores documents under a key prefix and signs download links
type Archive struct {
	client  *s3.Client
	signer  *s3.PresignClient
	bucket  string
	prefix  string
	linkTTL time.Duration
	log     *zap.Logger
}

type Option func(*Archive)

func WithLogger(log *zap.Logger) Option {
	return func(a *Archive) { a.log = log }
}

// WithLinkTTL overrides how long signed links stay valid
func WithLinkTTL(ttl time.Duration) Option {
	return func(a *Archive) { a.linkTTL = ttl }
}

// NewArchive builds the S3 client. Nothing is sent to the endpoint until
// the first call; use EnsureBucket at startup to fail early.
func NewArchive(cfg *config.StorageConfig, opts ...Option) (*Archive, error) {
	switch {
	case cfg == nil:
		return nil, ErrNoConfig
	case cfg.Bucket == "":
		return nil, ErrNoBucket
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey == "":
		return nil, ErrHalfCredential
	}

	endpoint, err := endpointURL(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	client, err := newClient(cfg, endpoint)
	if err != nil {
		return nil, err
	}

	a := &Archive{
		client:  client,
		signer:  s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.KeyPrefix, "/"),
		linkTTL: cfg.PresignExpiry,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.linkTTL <= 0 {
		a.linkTTL = defaultLinkTTL
	}
	return a, nil
}

// endpointURL accepts "host:port" as well as a full URL
func endpointURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid storage endpoint %q", raw)
	}
	return raw, nil
}

func newClient(cfg *config.StorageConfig, endpoint string) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	load := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		load = append(load, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), load...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (a *Archive) Bucket() string { return a.bucket }

// Key places a document key under the archive prefix
func (a *Archive) Key(key string) string {
	key = strings.TrimLeft(key, "/")
	if a.prefix == "" {
		return key
	}
	return path.Join(a.prefix, key)
}

// EnsureBucket creates the bucket when it is missing
func (a *Archive) EnsureBucket(ctx context.Context) error {
	_, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(a.bucket)})
	if err == nil {
		return nil
	}
	if !missing(err) {
		return fmt.Errorf("head bucket %s: %w", a.bucket, err)
	}

	a.log.Info("Creating archive bucket", zap.String("bucket", a.bucket))
	_, err = a.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(a.bucket)})
	var owned *types.BucketAlreadyOwnedByYou
	if err != nil && !errors.As(err, &owned) {
		return fmt.Errorf("create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Put stores data under Key(key) and returns the full object key
func (a *Archive) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyKey
	}
	objectKey := a.Key(key)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", objectKey, err)
	}
	a.log.Debug("Document stored",
		zap.String("bucket", a.bucket),
		zap.String("key", objectKey),
		zap.Int("size", len(data)),
	)
	return objectKey, nil
}

// SignedURL presigns a GET for a full object key. ttl <= 0 means the
// archive default.
func (a *Archive) SignedURL(ctx context.Context, objectKey string, ttl time.Duration) (string, time.Time, error) {
	if objectKey == "" {
		return "", time.Time{}, ErrEmptyKey
	}
	if ttl <= 0 {
		ttl = a.linkTTL
	}
	req, err := a.signer.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign %s: %w", objectKey, err)
	}
	return req.URL, time.Now().Add(ttl), nil
}

// Exists takes a full object key, as returned by Put
func (a *Archive) Exists(ctx context.Context, objectKey string) (bool, error) {
	if objectKey == "" {
		return false, ErrEmptyKey
	}
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	switch {
	case err == nil:
		return true, nil
	case missing(err):
		return false, nil
	default:
		return false, fmt.Errorf("head %s: %w", objectKey, err)
	}
}

// Delete is idempotent; S3 reports success for absent keys
func (a *Archive) Delete(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return ErrEmptyKey
	}
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", objectKey, err)
	}
	return nil
}

func missing(err error) bool {
	var notFound *types.NotFound
	var noBucket *types.NoSuchBucket
	var noKey *types.NoSuchKey
	return errors.As(err, &notFound) || errors.As(err, &noBucket) || errors.As(err, &noKey)
}
