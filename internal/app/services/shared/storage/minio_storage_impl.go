package storage

import (
	"context"
	"fmt"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	PublicURL   string
}

// NewMinioStorage builds object links from publicURL when set, otherwise from
// the client endpoint.
func NewMinioStorage(minioClient *minio.Client, bucketName, publicURL string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		PublicURL:   strings.TrimRight(publicURL, "/"),
	}
}

func (m *minioStorage) DriverName() string {
	return constvars.StorageDriverMinio
}

func (m *minioStorage) UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrStorageCreateObject(err, constvars.StorageDriverMinio, m.BucketName)
	}

	return m.objectURL(objectName), nil
}

func (m *minioStorage) objectURL(objectName string) string {
	if m.PublicURL != "" {
		return fmt.Sprintf("%s/%s/%s", m.PublicURL, m.BucketName, objectName)
	}
	endpoint := m.MinioClient.EndpointURL()
	return fmt.Sprintf("%s://%s/%s/%s", endpoint.Scheme, endpoint.Host, m.BucketName, objectName)
}
