package contracts

import (
	"context"
	"io"
)

type Storage interface {
	// UploadObject stores the reader under objectName and returns a URL to it.
	UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error)
	DriverName() string
}
