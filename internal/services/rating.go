package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

//go:generate mockgen -source=rating.go -destination=mock_rating.go -package=services

// ErrRatingNotFound is returned when the rating does not exist or belongs to another user.
var ErrRatingNotFound = errors.New("rating not found")

// RatingReader reads ratings.
type RatingReader interface {
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Rating, error)
	ListByWhiskeyID(ctx context.Context, whiskeyID int64) ([]models.Rating, error)
}

// RatingWriter mutates ratings.
type RatingWriter interface {
	Upsert(ctx context.Context, userID, whiskeyID int64, attrs models.RatingAttrs) (int64, error)
	Delete(ctx context.Context, userID, ratingID int64) (whiskeyID int64, deleted bool, err error)
}

// RatingService manages user ratings. A user has at most one rating per whiskey.
type RatingService struct {
	reader      RatingReader
	writer      RatingWriter
	whiskies    WhiskeyGetter
	kafkaWriter KafkaWriter
}

// NewRatingService creates a new RatingService. kafkaWriter may be nil.
func NewRatingService(
	reader RatingReader,
	writer RatingWriter,
	whiskies WhiskeyGetter,
	kafkaWriter KafkaWriter,
) *RatingService {
	return &RatingService{
		reader:      reader,
		writer:      writer,
		whiskies:    whiskies,
		kafkaWriter: kafkaWriter,
	}
}

// ListForWhiskey returns all ratings of a whiskey with their raters.
func (s *RatingService) ListForWhiskey(ctx context.Context, whiskeyID int64) ([]models.Rating, error) {
	ratings, err := s.reader.ListByWhiskeyID(ctx, whiskeyID)
	if err != nil {
		logger.Log.Errorw("failed to list whiskey ratings", "whiskeyID", whiskeyID, "error", err)
		return nil, err
	}
	return ratings, nil
}

// ListForUser returns the user's own ratings.
func (s *RatingService) ListForUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	ratings, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user ratings", "userID", userID, "error", err)
		return nil, err
	}
	return ratings, nil
}

// Rate creates the user's rating for a whiskey or overwrites the existing one.
func (s *RatingService) Rate(ctx context.Context, userID, whiskeyID int64, attrs models.RatingAttrs) (*models.Rating, error) {
	whiskey, err := s.whiskies.GetByID(ctx, whiskeyID)
	if err != nil {
		logger.Log.Errorw("failed to get whiskey", "whiskeyID", whiskeyID, "error", err)
		return nil, err
	}
	if whiskey == nil {
		return nil, ErrWhiskeyNotFound
	}

	id, err := s.writer.Upsert(ctx, userID, whiskeyID, attrs)
	if err != nil {
		logger.Log.Errorw("failed to rate whiskey", "userID", userID, "whiskeyID", whiskeyID, "error", err)
		return nil, err
	}

	rating, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get rating", "ratingID", id, "error", err)
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}

	publishActivity(ctx, s.kafkaWriter, newActivity(models.ActivityRatingUpserted, userID, whiskeyID, id))
	return rating, nil
}

// Delete removes a rating the user owns.
func (s *RatingService) Delete(ctx context.Context, userID, ratingID int64) error {
	whiskeyID, deleted, err := s.writer.Delete(ctx, userID, ratingID)
	if err != nil {
		logger.Log.Errorw("failed to delete rating", "userID", userID, "ratingID", ratingID, "error", err)
		return err
	}
	if !deleted {
		return ErrRatingNotFound
	}

	publishActivity(ctx, s.kafkaWriter, newActivity(models.ActivityRatingDeleted, userID, whiskeyID, ratingID))
	return nil
}
