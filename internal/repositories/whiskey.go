package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

// WhiskeyReadRepository reads the whiskey catalog.
type WhiskeyReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWhiskeyReadRepository(db *sqlx.DB, txGetter TxGetter) *WhiskeyReadRepository {
	return &WhiskeyReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the whiskey with the given id, or nil.
func (r *WhiskeyReadRepository) GetByID(ctx context.Context, id int64) (*models.Whiskey, error) {
	query := `
		SELECT ` + whiskeyColumns + `
		FROM whiskies w
		WHERE w.id = $1
	`

	var whiskey models.Whiskey
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &whiskey, query, id)

	logQuery(query, []any{id}, whiskey.ID, err)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get whiskey: %w", err)
	}
	return &whiskey, nil
}

// List returns the whole catalog ordered by id.
func (r *WhiskeyReadRepository) List(ctx context.Context) ([]models.Whiskey, error) {
	return r.Search(ctx, models.WhiskeyFilter{})
}

// Search matches Query case-insensitively against name and distillery and
// filters by exact Type and Country.
func (r *WhiskeyReadRepository) Search(ctx context.Context, filter models.WhiskeyFilter) ([]models.Whiskey, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(w.name ILIKE $"+n+" OR w.distillery ILIKE $"+n+")")
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, "w.type = $"+strconv.Itoa(len(args)))
	}
	if filter.Country != "" {
		args = append(args, filter.Country)
		conditions = append(conditions, "w.country = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + whiskeyColumns + ` FROM whiskies w`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY w.id`

	whiskies := []models.Whiskey{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &whiskies, query, args...)

	logQuery(query, args, len(whiskies), err)

	if err != nil {
		return nil, fmt.Errorf("search whiskies: %w", err)
	}
	return whiskies, nil
}

// WhiskeyWriteRepository mutates the whiskey catalog.
type WhiskeyWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWhiskeyWriteRepository(db *sqlx.DB, txGetter TxGetter) *WhiskeyWriteRepository {
	return &WhiskeyWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a catalog item and returns the stored row.
func (r *WhiskeyWriteRepository) Save(ctx context.Context, attrs models.WhiskeyAttrs) (*models.Whiskey, error) {
	query := `
		INSERT INTO whiskies AS w (name, distillery, type, country, region, age, abv, price, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + whiskeyColumns

	args := attrsArgs(attrs)

	var whiskey models.Whiskey
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &whiskey, query, args...)

	logQuery(query, args, whiskey.ID, err)

	if err != nil {
		return nil, fmt.Errorf("save whiskey: %w", err)
	}
	return &whiskey, nil
}

// Update applies the specified attrs to the whiskey and returns the stored row,
// or nil when the whiskey does not exist.
func (r *WhiskeyWriteRepository) Update(ctx context.Context, id int64, attrs models.WhiskeyAttrs) (*models.Whiskey, error) {
	set := newSetList(id)
	setIfNotNil(set, "name", attrs.Name)
	setIfNotNil(set, "distillery", attrs.Distillery)
	setIfNotNil(set, "type", attrs.Type)
	setIfNotNil(set, "country", attrs.Country)
	setIfSpecified(set, "region", attrs.Region)
	setIfSpecified(set, "age", attrs.Age)
	setIfSpecified(set, "abv", attrs.ABV)
	setIfSpecified(set, "price", attrs.Price)
	setIfSpecified(set, "description", attrs.Description)
	setIfSpecified(set, "image_url", attrs.ImageURL)

	query := `UPDATE whiskies AS w SET ` + set.clause() + ` WHERE w.id = $1 RETURNING ` + whiskeyColumns
	args := set.args

	var whiskey models.Whiskey
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &whiskey, query, args...)

	logQuery(query, args, whiskey.ID, err)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update whiskey: %w", err)
	}
	return &whiskey, nil
}

// Delete removes the whiskey and reports whether a row was deleted.
func (r *WhiskeyWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM whiskies WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("delete whiskey: %w", err)
	}
	return rowsAffected > 0, nil
}

func attrsArgs(attrs models.WhiskeyAttrs) []any {
	return []any{
		attrs.Name, attrs.Distillery, attrs.Type, attrs.Country,
		nullableArg(attrs.Region), nullableArg(attrs.Age), nullableArg(attrs.ABV),
		nullableArg(attrs.Price), nullableArg(attrs.Description), nullableArg(attrs.ImageURL),
	}
}
