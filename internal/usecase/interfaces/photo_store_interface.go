package interfaces

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidDataURL is returned when a photoBase64 payload does not match
// the data:image/<subtype>;base64,<payload> shape or fails to decode.
// Callers degrade silently: the submission proceeds without a photo.
var ErrInvalidDataURL = errors.New("invalid photo data url")

// IPhotoStore abstracts storage of uploaded complaint photos.
//
// Both Store methods return a public relative path ("/uploads/<filename>")
// suitable for persisting on the complaint and serving statically.

type IPhotoStore interface {
	StoreUpload(ctx context.Context, r io.Reader, filenameHint string) (string, error)
	StoreDataURL(ctx context.Context, dataURL string) (string, error)

	// AbsolutePath resolves a stored relative path to a filesystem path,
	// rejecting anything outside the uploads directory.
	AbsolutePath(relPath string) (string, error)

	// Remove deletes a stored photo. Only used when the rejected-image
	// retention policy is disabled.
	Remove(relPath string) error
}
