package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

//go:generate mockgen -source=collection.go -destination=mock_collection.go -package=services

var (
	// ErrAlreadyInCollection is returned when the user already owns an entry for the whiskey.
	ErrAlreadyInCollection = errors.New("whiskey already in collection")
	// ErrCollectionEntryNotFound is returned when the entry does not exist or belongs to another user.
	ErrCollectionEntryNotFound = errors.New("collection entry not found")
)

// CollectionReader reads collection entries.
type CollectionReader interface {
	GetByID(ctx context.Context, id int64) (*models.CollectionEntry, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.CollectionEntry, error)
}

// CollectionWriter mutates collection entries scoped to their owner.
type CollectionWriter interface {
	Save(ctx context.Context, userID, whiskeyID int64, attrs models.CollectionAttrs) (int64, bool, error)
	Update(ctx context.Context, userID, entryID int64, attrs models.CollectionAttrs) (bool, error)
	Delete(ctx context.Context, userID, entryID int64) (whiskeyID int64, deleted bool, err error)
}

// CollectionService manages the whiskies a user owns.
type CollectionService struct {
	reader      CollectionReader
	writer      CollectionWriter
	whiskies    WhiskeyGetter
	kafkaWriter KafkaWriter
}

// NewCollectionService creates a new CollectionService. kafkaWriter may be nil.
func NewCollectionService(
	reader CollectionReader,
	writer CollectionWriter,
	whiskies WhiskeyGetter,
	kafkaWriter KafkaWriter,
) *CollectionService {
	return &CollectionService{
		reader:      reader,
		writer:      writer,
		whiskies:    whiskies,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the user's collection.
func (s *CollectionService) List(ctx context.Context, userID int64) ([]models.CollectionEntry, error) {
	entries, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list collection", "userID", userID, "error", err)
		return nil, err
	}
	return entries, nil
}

// Add puts a whiskey into the user's collection.
func (s *CollectionService) Add(ctx context.Context, userID, whiskeyID int64, attrs models.CollectionAttrs) (*models.CollectionEntry, error) {
	whiskey, err := s.whiskies.GetByID(ctx, whiskeyID)
	if err != nil {
		logger.Log.Errorw("failed to get whiskey", "whiskeyID", whiskeyID, "error", err)
		return nil, err
	}
	if whiskey == nil {
		return nil, ErrWhiskeyNotFound
	}

	id, created, err := s.writer.Save(ctx, userID, whiskeyID, attrs)
	if err != nil {
		logger.Log.Errorw("failed to add to collection", "userID", userID, "whiskeyID", whiskeyID, "error", err)
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyInCollection
	}

	entry, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	publishActivity(ctx, s.kafkaWriter, newActivity(models.ActivityCollectionAdded, userID, whiskeyID, id))
	return entry, nil
}

// Update changes the given fields of an entry the user owns.
func (s *CollectionService) Update(ctx context.Context, userID, entryID int64, attrs models.CollectionAttrs) (*models.CollectionEntry, error) {
	updated, err := s.writer.Update(ctx, userID, entryID, attrs)
	if err != nil {
		logger.Log.Errorw("failed to update collection entry", "userID", userID, "entryID", entryID, "error", err)
		return nil, err
	}
	if !updated {
		return nil, ErrCollectionEntryNotFound
	}

	entry, err := s.get(ctx, entryID)
	if err != nil {
		return nil, err
	}

	publishActivity(ctx, s.kafkaWriter, newActivity(models.ActivityCollectionUpdated, userID, entry.WhiskeyID, entryID))
	return entry, nil
}

// Remove deletes an entry the user owns.
func (s *CollectionService) Remove(ctx context.Context, userID, entryID int64) error {
	whiskeyID, deleted, err := s.writer.Delete(ctx, userID, entryID)
	if err != nil {
		logger.Log.Errorw("failed to remove collection entry", "userID", userID, "entryID", entryID, "error", err)
		return err
	}
	if !deleted {
		return ErrCollectionEntryNotFound
	}

	publishActivity(ctx, s.kafkaWriter, newActivity(models.ActivityCollectionRemoved, userID, whiskeyID, entryID))
	return nil
}

func (s *CollectionService) get(ctx context.Context, id int64) (*models.CollectionEntry, error) {
	entry, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get collection entry", "entryID", id, "error", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrCollectionEntryNotFound
	}
	return entry, nil
}
