// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rebaby/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{Name: "Léa", Email: "lea@example.com", PasswordHash: "hash"}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 3)
	require.Equal(t, "Léa", args[0])
	require.Equal(t, "lea@example.com", args[1])
	require.Equal(t, "hash", args[2])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id, created_at")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildInsertUserQuery_SQLitePlaceholders(t *testing.T) {
	user := models.User{Name: "Léa", Email: "lea@example.com", PasswordHash: "hash"}

	query, _, err := buildInsertUserQuery(sqliteBuilder, user)
	require.NoError(t, err)

	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
}

func Test_buildSelectUserByEmailQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery(pgBuilder, "lea@example.com")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "lea@example.com", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "email = $1")

	// columns presence (key columns)
	for _, col := range userColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildInsertItemQuery_AllColumns(t *testing.T) {
	item := models.Item{
		Title:       "Poussette bleue",
		Price:       25.5,
		ListingType: "sale",
		OwnerID:     7,
		Available:   true,
	}

	query, args, err := buildInsertItemQuery(pgBuilder, item)
	require.NoError(t, err)
	require.Len(t, args, 8)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into items")
	require.Contains(t, q, "returning item_id, created_at")
	for _, col := range []string{"title", "description", "price", "condition", "listing_type", "image_filename", "owner_id", "available"} {
		require.Contains(t, q, col)
	}
}

func Test_buildListItemsQuery_NoFilters(t *testing.T) {
	query, args, err := buildListItemsQuery(pgBuilder, models.ListQuery{}, 12, 0)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from items")
	require.Contains(t, q, "order by item_id desc")
	require.Contains(t, q, "limit 12")
	require.Contains(t, q, "offset 0")
	require.NotContains(t, q, "where")
}

func Test_buildListItemsQuery_TitleFilterIsLowercased(t *testing.T) {
	query, args, err := buildListItemsQuery(pgBuilder, models.ListQuery{Query: "Stroller"}, 12, 0)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "%stroller%", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "lower(title) like $1")
}

func Test_buildListItemsQuery_TypeFilter(t *testing.T) {
	query, args, err := buildListItemsQuery(pgBuilder, models.ListQuery{ListingType: "sale"}, 12, 12)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "sale", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "listing_type = $1")
	require.Contains(t, q, "offset 12")
}

func Test_buildListItemsQuery_BogusTypeIgnored(t *testing.T) {
	query, args, err := buildListItemsQuery(pgBuilder, models.ListQuery{ListingType: "bogus"}, 12, 0)
	require.NoError(t, err)

	assert.Empty(t, args)
	// listing_type stays in the SELECT column list; only the filter must go
	assert.NotContains(t, strings.ToLower(query), "listing_type =")
	assert.NotContains(t, strings.ToLower(query), "where")
}

func Test_buildCountItemsQuery_SharesFilters(t *testing.T) {
	query, args, err := buildCountItemsQuery(pgBuilder, models.ListQuery{Query: "lit", ListingType: "rent"})
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, "%lit%", args[0])
	assert.Equal(t, "rent", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "count(*)")
	require.Contains(t, q, "lower(title) like")
	require.Contains(t, q, "listing_type")
	require.NotContains(t, q, "limit")
}
