package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

const collectionColumns = `
	c.id, c.user_id, c.whiskey_id, c.purchase_date, c.purchase_price,
	c.notes, c.bottle_status, c.created_at, c.updated_at`

// CollectionReadRepository reads collection entries joined with their whiskey.
type CollectionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCollectionReadRepository(db *sqlx.DB, txGetter TxGetter) *CollectionReadRepository {
	return &CollectionReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the entry joined with its whiskey, or nil.
func (r *CollectionReadRepository) GetByID(ctx context.Context, id int64) (*models.CollectionEntry, error) {
	query := `
		SELECT ` + collectionColumns + `, ` + joinedWhiskeyColumns + `
		FROM collections c
		JOIN whiskies w ON w.id = c.whiskey_id
		WHERE c.id = $1
	`

	var entry models.CollectionEntry
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, id)

	logQuery(query, []any{id}, entry.ID, err)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection entry: %w", err)
	}
	return &entry, nil
}

// ListByUserID returns all entries of the user joined with their whiskey.
func (r *CollectionReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.CollectionEntry, error) {
	query := `
		SELECT ` + collectionColumns + `, ` + joinedWhiskeyColumns + `
		FROM collections c
		JOIN whiskies w ON w.id = c.whiskey_id
		WHERE c.user_id = $1
		ORDER BY c.id
	`

	entries := []models.CollectionEntry{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, userID)

	logQuery(query, []any{userID}, len(entries), err)

	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	return entries, nil
}

// CollectionWriteRepository mutates collection entries. Every mutation of an
// existing entry is scoped to its owner in the same statement.
type CollectionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCollectionWriteRepository(db *sqlx.DB, txGetter TxGetter) *CollectionWriteRepository {
	return &CollectionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an entry. created is false when the user already has the whiskey.
func (r *CollectionWriteRepository) Save(ctx context.Context, userID, whiskeyID int64, attrs models.CollectionAttrs) (id int64, created bool, err error) {
	query := `
		INSERT INTO collections (user_id, whiskey_id, purchase_date, purchase_price, notes, bottle_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id, whiskey_id) DO NOTHING
		RETURNING id
	`

	status := models.BottleSealed
	if attrs.BottleStatus != nil {
		status = *attrs.BottleStatus
	}
	args := []any{
		userID, whiskeyID,
		nullableArg(attrs.PurchaseDate), nullableArg(attrs.PurchasePrice), nullableArg(attrs.Notes),
		string(status),
	}

	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("save collection entry: %w", err)
	}
	return id, true, nil
}

// Update applies the specified attrs to the entry owned by userID.
// It reports false when no such entry exists for that owner.
func (r *CollectionWriteRepository) Update(ctx context.Context, userID, entryID int64, attrs models.CollectionAttrs) (bool, error) {
	set := newSetList(entryID, userID)
	setIfSpecified(set, "purchase_date", attrs.PurchaseDate)
	setIfSpecified(set, "purchase_price", attrs.PurchasePrice)
	setIfSpecified(set, "notes", attrs.Notes)
	if attrs.BottleStatus != nil {
		set.add("bottle_status", string(*attrs.BottleStatus))
	}

	query := `UPDATE collections SET ` + set.clause() + ` WHERE id = $1 AND user_id = $2`
	args := set.args

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("update collection entry: %w", err)
	}
	return rowsAffected > 0, nil
}

// Delete removes the entry owned by userID and returns the whiskey it referred to.
// deleted is false when no such entry exists for that owner.
func (r *CollectionWriteRepository) Delete(ctx context.Context, userID, entryID int64) (whiskeyID int64, deleted bool, err error) {
	query := `DELETE FROM collections WHERE id = $1 AND user_id = $2 RETURNING whiskey_id`

	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &whiskeyID, query, entryID, userID)

	logQuery(query, []any{entryID, userID}, whiskeyID, err)

	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("delete collection entry: %w", err)
	}
	return whiskeyID, true, nil
}
