package service

import (
	"context"
	"io"

	"github.com/MKhiriev/rebaby/internal/forms"
	"github.com/MKhiriev/rebaby/models"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a new account from an already-validated form,
	// hashing the password before persistence. Returns the persisted user
	// or an error wrapping store.ErrEmailAlreadyExists when the email is
	// taken.
	Register(ctx context.Context, form forms.RegisterForm) (models.User, error)

	// Login verifies the credentials against the stored account. Returns
	// the account on success, an error wrapping store.ErrNoUserWasFound
	// for an unknown email, or ErrWrongPassword for a bad password.
	Login(ctx context.Context, form forms.LoginForm) (models.User, error)
}

// ListingService handles creation and retrieval of classified listings.
type ListingService interface {
	// List returns one page of listings matching the query, newest first.
	List(ctx context.Context, query models.ListQuery) (models.ItemPage, error)

	// Create persists a new listing owned by ownerID. imageFilename is the
	// stored upload filename, empty when the listing has no photo.
	Create(ctx context.Context, ownerID int64, form forms.ItemForm, imageFilename string) (models.Item, error)

	// Get returns a single listing or an error wrapping store.ErrItemNotFound.
	Get(ctx context.Context, itemID int64) (models.Item, error)
}

// UploadService validates, stores and normalizes uploaded listing images.
// The all-or-nothing contract: after a failed ProcessImage no file remains
// on disk.
type UploadService interface {
	// Accept rejects files whose extension is not an accepted image format,
	// regardless of the declared content type.
	Accept(originalName string) error

	// Store writes the upload under a freshly generated random filename
	// that keeps the original extension, and returns that bare filename.
	Store(ctx context.Context, src io.Reader, originalName string) (string, error)

	// Normalize verifies that the stored file decodes as a genuine image
	// and rewrites it downscaled so neither dimension exceeds the bound.
	// On any failure the file is deleted before the error is returned.
	Normalize(ctx context.Context, filename string) error

	// ProcessImage runs Accept, Store and Normalize as one step and
	// returns the stored filename.
	ProcessImage(ctx context.Context, src io.Reader, originalName string) (string, error)

	// Path resolves a stored filename against the upload directory.
	Path(filename string) string
}
