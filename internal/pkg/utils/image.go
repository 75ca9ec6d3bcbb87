package utils

import (
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"mime/multipart"
	"strings"
)

var allowedImageTypes = map[string]bool{
	constvars.MIMEImageJPEG: true,
	constvars.MIMEImagePNG:  true,
	constvars.MIMEImageGIF:  true,
	constvars.MIMEImageWEBP: true,
}

func IsAllowedImageType(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return allowedImageTypes[contentType]
}

// ValidateImage checks the declared content type and the size of an uploaded image.
func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMB int64) error {
	if fileHeader == nil {
		return exceptions.ErrNoFileUploaded(nil)
	}
	if !IsAllowedImageType(fileHeader.Header.Get(constvars.HeaderContentType)) {
		return exceptions.ErrImageTypeNotAllowed(nil)
	}
	if fileHeader.Size > maxSizeInMB*1024*1024 {
		return exceptions.ErrImageTooLarge(nil, maxSizeInMB)
	}
	return nil
}
