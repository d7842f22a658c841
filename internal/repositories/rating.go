package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

const ratingColumns = `
	r.id, r.user_id, r.whiskey_id, r.score, r.nose, r.taste, r.finish,
	r.notes, r.created_at, r.updated_at`

// RatingReadRepository reads ratings with their joined whiskey or rater.
type RatingReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRatingReadRepository(db *sqlx.DB, txGetter TxGetter) *RatingReadRepository {
	return &RatingReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the rating joined with its whiskey, or nil.
func (r *RatingReadRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	query := `
		SELECT ` + ratingColumns + `, ` + joinedWhiskeyColumns + `
		FROM ratings r
		JOIN whiskies w ON w.id = r.whiskey_id
		WHERE r.id = $1
	`

	var rating models.Rating
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rating, query, id)

	logQuery(query, []any{id}, rating.ID, err)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rating, nil
}

// ListByUserID returns the user's ratings joined with the rated whiskey.
func (r *RatingReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Rating, error) {
	query := `
		SELECT ` + ratingColumns + `, ` + joinedWhiskeyColumns + `
		FROM ratings r
		JOIN whiskies w ON w.id = r.whiskey_id
		WHERE r.user_id = $1
		ORDER BY r.id
	`

	ratings := []models.Rating{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ratings, query, userID)

	logQuery(query, []any{userID}, len(ratings), err)

	if err != nil {
		return nil, fmt.Errorf("list user ratings: %w", err)
	}
	return ratings, nil
}

// ListByWhiskeyID returns every rating of a whiskey with the rater's id and username.
func (r *RatingReadRepository) ListByWhiskeyID(ctx context.Context, whiskeyID int64) ([]models.Rating, error) {
	query := `
		SELECT ` + ratingColumns + `, u.id AS "user.id", u.username AS "user.username"
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.whiskey_id = $1
		ORDER BY r.id
	`

	ratings := []models.Rating{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ratings, query, whiskeyID)

	logQuery(query, []any{whiskeyID}, len(ratings), err)

	if err != nil {
		return nil, fmt.Errorf("list whiskey ratings: %w", err)
	}
	return ratings, nil
}

// RatingWriteRepository mutates ratings.
type RatingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRatingWriteRepository(db *sqlx.DB, txGetter TxGetter) *RatingWriteRepository {
	return &RatingWriteRepository{db: db, txGetter: txGetter}
}

// Upsert creates the user's rating for the whiskey or overwrites the existing one in place.
func (r *RatingWriteRepository) Upsert(ctx context.Context, userID, whiskeyID int64, attrs models.RatingAttrs) (int64, error) {
	query := `
		INSERT INTO ratings (user_id, whiskey_id, score, nose, taste, finish, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id, whiskey_id)
		DO UPDATE SET
			score = EXCLUDED.score,
			nose = EXCLUDED.nose,
			taste = EXCLUDED.taste,
			finish = EXCLUDED.finish,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id
	`
	args := []any{userID, whiskeyID, attrs.Score, attrs.Nose, attrs.Taste, attrs.Finish, attrs.Notes}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	if err != nil {
		return 0, fmt.Errorf("upsert rating: %w", err)
	}
	return id, nil
}

// Delete removes the rating owned by userID and returns the rated whiskey.
// deleted is false when no such rating exists for that owner.
func (r *RatingWriteRepository) Delete(ctx context.Context, userID, ratingID int64) (whiskeyID int64, deleted bool, err error) {
	query := `DELETE FROM ratings WHERE id = $1 AND user_id = $2 RETURNING whiskey_id`

	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &whiskeyID, query, ratingID, userID)

	logQuery(query, []any{ratingID, userID}, whiskeyID, err)

	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("delete rating: %w", err)
	}
	return whiskeyID, true, nil
}
