package minio

import (
	"errors"
	"io"
	"time"

	"influencer-srv/config"

	"github.com/minio/minio-go/v7"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second

	// MaxPresignedExpiry is the maximum presigned URL expiry (7 days).
	MaxPresignedExpiry = 7 * 24 * time.Hour
)

var (
	errEndpointRequired    = errors.New("minio: endpoint is required")
	errCredentialsRequired = errors.New("minio: access key and secret key are required")
)

// implMinIO implements IMinIO.
type implMinIO struct {
	client *minio.Client
	config config.MinIOConfig
}

// UploadRequest contains the parameters for uploading an object.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	BucketName   string    `json:"bucket_name"`
	ObjectName   string    `json:"object_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}
