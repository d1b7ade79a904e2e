package store

import (
	"context"

	"github.com/MKhiriev/rebaby/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account registered under the exact email.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemRepository is the data-access contract for classified listings.
type ItemRepository interface {
	// CreateItem persists a new listing and returns it with server-assigned
	// fields populated.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// GetItem retrieves a single listing by id.
	// Returns ErrItemNotFound when no such listing exists.
	GetItem(ctx context.Context, itemID int64) (models.Item, error)

	// ListItems returns one page of listings matching the query, newest
	// first. Out-of-range pages yield an empty page, not an error.
	ListItems(ctx context.Context, query models.ListQuery) (models.ItemPage, error)
}
