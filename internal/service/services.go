package service

import (
	"github.com/MKhiriev/rebaby/internal/config"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/store"
)

// Services bundles every application service for injection into the HTTP
// handler layer.
type Services struct {
	AuthService    AuthService
	ListingService ListingService
	UploadService  UploadService
}

// NewServices wires the services to their repositories and the configured
// upload directory.
func NewServices(storages *store.Storages, cfg config.Storage, log *logger.Logger) (*Services, error) {
	uploadService, err := NewUploadService(cfg.Files, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, log),
		ListingService: NewListingService(storages.ItemRepository, log),
		UploadService:  uploadService,
	}, nil
}
