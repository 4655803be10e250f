package minio

import (
	"context"
	"io"
	"net/http"
	"time"

	"influencer-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// IMinIO is the object storage client used for archiving influencer media.
// Implementations are safe for concurrent use.
type IMinIO interface {
	HealthCheck(ctx context.Context) error
	EnsureBucket(ctx context.Context, bucketName string) error
	Upload(ctx context.Context, req UploadRequest) (*ObjectInfo, error)
	Download(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, bucketName, objectName string) error
	Exists(ctx context.Context, bucketName, objectName string) (bool, error)
}

// New creates a new MinIO client. Returns the interface.
func New(cfg config.MinIOConfig) (IMinIO, error) {
	if cfg.Endpoint == "" {
		return nil, errEndpointRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errCredentialsRequired
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		client: client,
		config: cfg,
	}, nil
}
