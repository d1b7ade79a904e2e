package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/MKhiriev/rebaby/internal/config"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/utils"
)

// maxImageDimension bounds both sides of a stored listing image. Larger
// images are downscaled with the aspect ratio preserved; smaller ones are
// never upscaled.
const maxImageDimension = 1200

// allowedImageExtensions is the upload allow-list. Matching is done on the
// lowercased filename extension only; the declared content type is ignored.
var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// uploadService is the concrete implementation of UploadService. It owns the
// public upload directory and the random filename generator.
type uploadService struct {
	uploadDir string
	uuid      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewUploadService constructs an UploadService rooted at the configured
// upload directory, creating the directory if it does not exist yet.
func NewUploadService(cfg config.Files, logger *logger.Logger) (UploadService, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Err(err).Str("dir", cfg.UploadDir).Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	return &uploadService{
		uploadDir: cfg.UploadDir,
		uuid:      utils.NewUUIDGenerator(),
		logger:    logger,
	}, nil
}

// Accept rejects files whose extension is not an accepted image format.
func (s *uploadService) Accept(originalName string) error {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedImageFormat, ext)
	}

	return nil
}

// Store writes the upload under a freshly generated random filename that
// keeps the original (lowercased) extension. The original filename is
// discarded entirely rather than sanitized. Returns the bare filename.
func (s *uploadService) Store(ctx context.Context, src io.Reader, originalName string) (string, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := s.uuid.Generate() + ext
	path := s.Path(filename)

	dst, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("error creating upload file")
		return "", fmt.Errorf("error creating upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		log.Err(err).Str("path", path).Msg("error writing upload file")
		return "", fmt.Errorf("error writing upload file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("error writing upload file: %w", err)
	}

	return filename, nil
}

// Normalize verifies that the stored file decodes as a genuine image and
// rewrites it in place, downscaled so neither dimension exceeds
// maxImageDimension. The decode step is the real validation: a file with an
// accepted extension but non-image bytes fails here.
//
// On any failure — decode or rewrite — the file is deleted before
// ErrImageProcessingFailed is returned, so no partial upload survives.
func (s *uploadService) Normalize(ctx context.Context, filename string) error {
	log := logger.FromContext(ctx)
	path := s.Path(filename)

	img, err := imaging.Open(path)
	if err != nil {
		os.Remove(path)
		log.Err(err).Str("path", path).Msg("uploaded file is not a decodable image")
		return fmt.Errorf("%w: %w", ErrImageProcessingFailed, err)
	}

	// Fit preserves the aspect ratio and never upscales.
	img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)

	if err := imaging.Save(img, path); err != nil {
		os.Remove(path)
		log.Err(err).Str("path", path).Msg("error rewriting normalized image")
		return fmt.Errorf("%w: %w", ErrImageProcessingFailed, err)
	}

	return nil
}

// ProcessImage runs Accept, Store and Normalize as one all-or-nothing step.
func (s *uploadService) ProcessImage(ctx context.Context, src io.Reader, originalName string) (string, error) {
	if err := s.Accept(originalName); err != nil {
		return "", err
	}

	filename, err := s.Store(ctx, src, originalName)
	if err != nil {
		return "", err
	}

	if err := s.Normalize(ctx, filename); err != nil {
		return "", err
	}

	return filename, nil
}

// Path resolves a stored filename against the upload directory.
func (s *uploadService) Path(filename string) string {
	return filepath.Join(s.uploadDir, filename)
}
