package presign

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"go-url-cache/internal/config"
	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/utils"
)

// MaxExpiry is the longest lifetime S3 accepts for a presigned URL
const MaxExpiry = config.MaxPresignExpiry

// ErrExpiryTooLong is returned for expiries S3 would not honour
var ErrExpiryTooLong = errors.New("presigned URL expiry exceeds seven days")

var (
	_ interfaces.AsyncURLResolver = (*Resolver)(nil)
	_ interfaces.ExpiryLimiter    = (*Resolver)(nil)
)

// Resolver mints presigned GET URLs for objects in an S3-compatible bucket
type Resolver struct {
	presigner     interfaces.ObjectPresigner
	bucket        string
	prefix        string
	defaultExpiry time.Duration
	logger        *zap.Logger
}

// NewMinIOResolver creates a resolver backed by a MinIO client
func NewMinIOResolver(cfg *config.PresignConfig, logger *zap.Logger) (*Resolver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	logger.Info("Presign resolver initialized",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
		zap.Bool("use_ssl", cfg.UseSSL))

	return NewResolver(client, cfg, logger), nil
}

// NewResolver creates a resolver with the provided presigner
func NewResolver(presigner interfaces.ObjectPresigner, cfg *config.PresignConfig, logger *zap.Logger) *Resolver {
	return &Resolver{
		presigner:     presigner,
		bucket:        cfg.Bucket,
		prefix:        cfg.Prefix,
		defaultExpiry: cfg.DefaultExpiry,
		logger:        logger,
	}
}

// Name identifies the resolver
func (r *Resolver) Name() string {
	return "presign"
}

// MaxExpiry returns the longest expiry ResolveURL accepts
func (r *Resolver) MaxExpiry() time.Duration {
	return MaxExpiry
}

// ResolveURL presigns the object for fileID/variant
func (r *Resolver) ResolveURL(ctx context.Context, fileID, variant string, expiresIn time.Duration) (string, error) {
	if fileID == "" {
		return "", errors.New("file id cannot be empty")
	}

	expiry := expiresIn
	if expiry <= 0 {
		expiry = r.defaultExpiry
	}
	if expiry > MaxExpiry {
		return "", fmt.Errorf("%w: %s", ErrExpiryTooLong, expiry)
	}

	objectName := utils.ObjectName(r.prefix, fileID, variant)
	signed, err := r.presigner.PresignedGetObject(ctx, r.bucket, objectName, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", r.bucket, objectName, err)
	}

	r.logger.Debug("Presigned download URL",
		zap.String("bucket", r.bucket),
		zap.String("object", objectName),
		zap.Duration("expiry", expiry))

	return signed.String(), nil
}
