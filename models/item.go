package models

import "time"

// Listing type values accepted for Item.ListingType. Any other value is not
// a valid listing type and is ignored when used as an index filter.
const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

// IsValidListingType reports whether s is one of the accepted listing types.
func IsValidListingType(s string) bool {
	return s == ListingTypeSale || s == ListingTypeRent
}

// Item represents a published classified listing for a piece of baby or
// child equipment offered for sale or rent.
type Item struct {
	// ItemID is the internal unique identifier of the listing, assigned by
	// the persistence layer. Listing order on the index page is descending
	// ItemID, which approximates descending creation order.
	ItemID int64

	// Title is the short headline of the listing. Required, at most 140
	// characters.
	Title string

	// Description is the optional long-form text, at most 2000 characters.
	Description string

	// Price is the asking price in euros. Always non-negative in persisted
	// records.
	Price float64

	// Condition is optional free text describing the item's state
	// (e.g. "comme neuf").
	Condition string

	// ListingType is either "sale" or "rent".
	ListingType string

	// ImageFilename is the bare generated filename of the uploaded photo,
	// empty when the listing has none. Display resolves it under the
	// public /uploads/ route.
	ImageFilename string

	// OwnerID references the User that created the listing. Ownership is
	// permanent.
	OwnerID int64

	// Available is persisted (default true) but not yet read or toggled by
	// any behavior; it is reserved for a future sold/rented flow.
	Available bool

	// CreatedAt is the timestamp when the listing was published.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
