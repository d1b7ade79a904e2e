package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rebaby/internal/forms"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/store"
	"github.com/MKhiriev/rebaby/models"
)

// listingService is the concrete implementation of ListingService.
type listingService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

// NewListingService constructs a ListingService wired to the given ItemRepository.
func NewListingService(itemRepository store.ItemRepository, logger *logger.Logger) ListingService {
	return &listingService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// List returns one page of listings matching the query.
// Filter semantics live in the repository: case-insensitive title substring,
// sale/rent restriction with other values ignored, newest first.
func (s *listingService) List(ctx context.Context, query models.ListQuery) (models.ItemPage, error) {
	page, err := s.itemRepository.ListItems(ctx, query)
	if err != nil {
		return models.ItemPage{}, fmt.Errorf("listing query failed: %w", err)
	}

	return page, nil
}

// Create persists a new listing owned by ownerID.
//
// The price is re-parsed from the form here so that no path can persist a
// negative or non-numeric price regardless of what the handler checked.
//
// Returns the persisted listing or:
//   - ErrInvalidDataProvided (wrapping forms.ErrInvalidPrice) for a bad price
//     or an unauthenticated owner id.
//   - A wrapped storage error if the repository call fails.
func (s *listingService) Create(ctx context.Context, ownerID int64, form forms.ItemForm, imageFilename string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if ownerID <= 0 {
		log.Error().Int64("owner_id", ownerID).Msg("invalid listing owner")
		return models.Item{}, ErrInvalidDataProvided
	}

	price, err := form.PriceValue()
	if err != nil {
		log.Err(err).Str("price", form.Price).Msg("invalid listing price")
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdItem, err := s.itemRepository.CreateItem(ctx, models.Item{
		Title:         form.Title,
		Description:   form.Description,
		Price:         price,
		Condition:     form.Condition,
		ListingType:   form.ListingType,
		ImageFilename: imageFilename,
		OwnerID:       ownerID,
		Available:     true,
	})
	if err != nil {
		log.Err(err).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// Get returns a single listing by id.
func (s *listingService) Get(ctx context.Context, itemID int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}

	return item, nil
}
