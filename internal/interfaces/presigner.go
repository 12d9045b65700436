package interfaces

import (
	"context"
	"net/url"
	"time"
)

//go:generate mockgen -package=mock -source=presigner.go -destination=mock/presigner.go

// ObjectPresigner mints time-limited GET URLs for objects in a bucket.
// It is satisfied by *minio.Client.
type ObjectPresigner interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}
