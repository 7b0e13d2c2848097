package media

import (
	"context"
	"fmt"
)

// Uploader stores an image binary in an external media host and returns a
// publicly addressable URL for it.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
}

// UploadError reports a media host failure. The handler layer maps it to an
// internal server error, never a client error.
type UploadError struct {
	Status  int
	Message string
}

func (e *UploadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("media upload failed (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("media upload failed: %s", e.Message)
}
