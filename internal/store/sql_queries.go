package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/rebaby/models"
)

// Column sets scanned by the repositories. Kept in one place so the SELECT
// builders and the row-scanning code cannot drift apart.
var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "created_at"}
	itemColumns = []string{
		"item_id", "title", "description", "price", "condition",
		"listing_type", "image_filename", "owner_id", "available", "created_at",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Insert("items").
		Columns("title", "description", "price", "condition", "listing_type",
			"image_filename", "owner_id", "available").
		Values(item.Title, item.Description, item.Price, item.Condition,
			item.ListingType, item.ImageFilename, item.OwnerID, item.Available).
		Suffix("RETURNING item_id, created_at").
		ToSql()
}

func buildSelectItemByIDQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"item_id": itemID}).
		ToSql()
}

// buildListItemsQuery assembles the paginated index query: optional
// case-insensitive title substring filter, optional listing-type filter,
// newest first. Invalid listing types have already been discarded by the
// caller, so every filter present here applies.
func buildListItemsQuery(b sq.StatementBuilderType, query models.ListQuery, limit, offset uint64) (string, []any, error) {
	return applyItemFilters(b.Select(itemColumns...).From("items"), query).
		OrderBy("item_id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildCountItemsQuery assembles the companion COUNT for the same filters,
// used to compute the total page count.
func buildCountItemsQuery(b sq.StatementBuilderType, query models.ListQuery) (string, []any, error) {
	return applyItemFilters(b.Select("COUNT(*)").From("items"), query).ToSql()
}

func applyItemFilters(builder sq.SelectBuilder, query models.ListQuery) sq.SelectBuilder {
	if query.Query != "" {
		// LOWER on both sides keeps the match case-insensitive on every
		// backend (SQLite's LIKE only folds ASCII, Postgres' none).
		pattern := "%" + strings.ToLower(query.Query) + "%"
		builder = builder.Where(sq.Expr("LOWER(title) LIKE ?", pattern))
	}

	if models.IsValidListingType(query.ListingType) {
		builder = builder.Where(sq.Eq{"listing_type": query.ListingType})
	}

	return builder
}
