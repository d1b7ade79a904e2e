package service

import "errors"

// Sentinel errors returned by the service layer. Handlers match them with
// [errors.Is] to choose the user-facing notice and response.
var (
	// ErrInvalidDataProvided is returned when a service call receives input
	// that failed its basic integrity checks.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not verify
	// against the stored hash. Handlers must present it identically to an
	// unknown email.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUnsupportedImageFormat is returned when an uploaded file's extension
	// is not one of the accepted image formats.
	ErrUnsupportedImageFormat = errors.New("unsupported image format")

	// ErrImageProcessingFailed is returned when a stored upload cannot be
	// decoded as a genuine image or rewriting it fails. The partial file has
	// already been removed when this error is returned.
	ErrImageProcessingFailed = errors.New("image processing failed")
)
