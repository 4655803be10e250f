package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// HealthCheck verifies the storage backend is reachable.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	_, err := m.client.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

// EnsureBucket creates the bucket if it does not exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("minio: check bucket %s: %w", bucketName, err)
	}
	if exists {
		return nil
	}

	err = m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
	if err != nil {
		return fmt.Errorf("minio: create bucket %s: %w", bucketName, err)
	}
	return nil
}

// Upload stores an object. Size may be -1 for unknown length streams.
func (m *implMinIO) Upload(ctx context.Context, req UploadRequest) (*ObjectInfo, error) {
	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: upload %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &ObjectInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

// Download opens an object for reading. The caller must close the reader.
func (m *implMinIO) Download(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio: download %s/%s: %w", bucketName, objectName, err)
	}
	return obj, nil
}

// PresignedGetURL returns a temporary download URL for an object.
func (m *implMinIO) PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	if expiry <= 0 || expiry > MaxPresignedExpiry {
		expiry = MaxPresignedExpiry
	}

	u, err := m.client.PresignedGetObject(ctx, bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("minio: presign %s/%s: %w", bucketName, objectName, err)
	}
	return u.String(), nil
}

// Delete removes an object.
func (m *implMinIO) Delete(ctx context.Context, bucketName, objectName string) error {
	err := m.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("minio: delete %s/%s: %w", bucketName, objectName, err)
	}
	return nil
}

// Exists reports whether an object exists.
func (m *implMinIO) Exists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return false, nil
		}
		return false, fmt.Errorf("minio: stat %s/%s: %w", bucketName, objectName, err)
	}
	return true, nil
}
