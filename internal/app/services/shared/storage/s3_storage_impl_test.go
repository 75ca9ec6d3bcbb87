package storage

import (
	"context"
	"errors"
	"halo-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestS3StorageUploadObject(t *testing.T) {
	matchInput := mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "halo" &&
			aws.ToString(in.Key) == "profile-pictures/u1/a.png" &&
			aws.ToString(in.ContentType) == "image/png" &&
			aws.ToInt64(in.ContentLength) == 4
	})

	t.Run("virtual hosted URL", func(t *testing.T) {
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, matchInput).Return(&s3.PutObjectOutput{}, nil)
		storage := NewS3Storage(client, "halo", "ap-south-1", "")

		url, err := storage.UploadObject(context.Background(), strings.NewReader("data"), 4, "profile-pictures/u1/a.png", "image/png")

		require.NoError(t, err)
		assert.Equal(t, "https://halo.s3.ap-south-1.amazonaws.com/profile-pictures/u1/a.png", url)
		client.AssertExpectations(t)
	})

	t.Run("custom endpoint uses path style URL", func(t *testing.T) {
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, matchInput).Return(&s3.PutObjectOutput{}, nil)
		storage := NewS3Storage(client, "halo", "us-east-1", "http://localhost:4566/")

		url, err := storage.UploadObject(context.Background(), strings.NewReader("data"), 4, "profile-pictures/u1/a.png", "image/png")

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4566/halo/profile-pictures/u1/a.png", url)
	})

	t.Run("upload failure", func(t *testing.T) {
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))
		storage := NewS3Storage(client, "halo", "ap-south-1", "")

		_, err := storage.UploadObject(context.Background(), strings.NewReader("data"), 4, "profile-pictures/u1/a.png", "image/png")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})
}
