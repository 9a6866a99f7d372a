package service

import (
	"mime"
	"strings"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/pkg/errs"
)

// ValidateImage checks the declared content type of an upload part and its
// size. It returns the bare media type to store.
func ValidateImage(contentType string, size int64) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", errs.ErrNotAnImage
	}

	if size > config.MaxImageSize {
		return "", errs.ErrPayloadTooLarge
	}

	return mediaType, nil
}
