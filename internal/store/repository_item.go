package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// It handles listing creation, lookup, and the filtered/paginated index
// query against the "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new listing and returns the fully populated
// [models.Item] with server-assigned fields (ItemID, CreatedAt).
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: query building error")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ItemID, &item.CreatedAt); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: item was not created")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// GetItem retrieves a single listing by id.
//
// Error handling:
//   - empty result set → [ErrItemNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemByIDQuery(r.db.builder, itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error: query building error")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanItem(row.Scan, &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// ListItems returns one page of listings matching the query, newest first
// (descending item id), together with the pagination state derived from the
// companion COUNT query. A page beyond the last one yields an empty Items
// slice and no error.
func (r *itemRepository) ListItems(ctx context.Context, query models.ListQuery) (models.ItemPage, error) {
	log := logger.FromContext(ctx)

	page := query.Page
	if page < 1 {
		page = 1
	}

	total, err := r.countItems(ctx, query)
	if err != nil {
		return models.ItemPage{}, err
	}

	sqlQuery, args, err := buildListItemsQuery(
		r.db.builder, query,
		uint64(models.ItemsPerPage),
		uint64((page-1)*models.ItemsPerPage),
	)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: query building error")
		return models.ItemPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: query execution error")
		return models.ItemPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, models.ItemsPerPage)
	for rows.Next() {
		var item models.Item
		if err := scanItem(rows.Scan, &item); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: scanning error")
			return models.ItemPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: rows iteration error")
		return models.ItemPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.ItemPage{
		Items: items,
		Page:  page,
		Pages: (total + models.ItemsPerPage - 1) / models.ItemsPerPage,
		Total: total,
	}, nil
}

func (r *itemRepository) countItems(ctx context.Context, query models.ListQuery) (int, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildCountItemsQuery(r.db.builder, query)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.countItems").Msg("error: query building error")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*itemRepository.countItems").Msg("error: count query error")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// scanItem reads one full item row in itemColumns order through the given
// scan function, shared between single-row and multi-row reads.
func scanItem(scan func(dest ...any) error, item *models.Item) error {
	return scan(
		&item.ItemID,
		&item.Title,
		&item.Description,
		&item.Price,
		&item.Condition,
		&item.ListingType,
		&item.ImageFilename,
		&item.OwnerID,
		&item.Available,
		&item.CreatedAt,
	)
}
