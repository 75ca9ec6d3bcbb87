package storage

import (
	"context"
	"fmt"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3PutObjectAPI is the part of *s3.Client the storage needs.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Storage struct {
	client     S3PutObjectAPI
	bucketName string
	region     string
	endpoint   string
}

func NewS3Storage(client S3PutObjectAPI, bucketName, region, endpoint string) contracts.Storage {
	return &s3Storage{
		client:     client,
		bucketName: bucketName,
		region:     region,
		endpoint:   strings.TrimRight(endpoint, "/"),
	}
}

func (s *s3Storage) DriverName() string {
	return constvars.StorageDriverS3
}

func (s *s3Storage) UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(objectName),
		Body:          reader,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", exceptions.ErrStorageCreateObject(err, constvars.StorageDriverS3, s.bucketName)
	}

	return s.objectURL(objectName), nil
}

func (s *s3Storage) objectURL(objectName string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucketName, objectName)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, objectName)
}
