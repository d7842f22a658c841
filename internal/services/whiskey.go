package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

//go:generate mockgen -source=whiskey.go -destination=mock_whiskey.go -package=services

// ErrWhiskeyNotFound is returned when a referenced catalog item does not exist.
var ErrWhiskeyNotFound = errors.New("whiskey not found")

// WhiskeyGetter resolves a single catalog item.
type WhiskeyGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Whiskey, error)
}

// WhiskeyReader reads the catalog.
type WhiskeyReader interface {
	WhiskeyGetter
	List(ctx context.Context) ([]models.Whiskey, error)
	Search(ctx context.Context, filter models.WhiskeyFilter) ([]models.Whiskey, error)
}

// WhiskeyWriter mutates the catalog.
type WhiskeyWriter interface {
	Save(ctx context.Context, attrs models.WhiskeyAttrs) (*models.Whiskey, error)
	Update(ctx context.Context, id int64, attrs models.WhiskeyAttrs) (*models.Whiskey, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WhiskeyCache caches catalog items by id.
type WhiskeyCache interface {
	Get(ctx context.Context, id int64) (*models.Whiskey, error)
	Set(ctx context.Context, whiskey *models.Whiskey) error
	Delete(ctx context.Context, id int64) error
}

// WhiskeyService serves the shared whiskey catalog with an optional read-through cache.
type WhiskeyService struct {
	reader WhiskeyReader
	writer WhiskeyWriter
	cache  WhiskeyCache
}

// NewWhiskeyService creates a new WhiskeyService. cache may be nil.
func NewWhiskeyService(reader WhiskeyReader, writer WhiskeyWriter, cache WhiskeyCache) *WhiskeyService {
	return &WhiskeyService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns the whole catalog.
func (s *WhiskeyService) List(ctx context.Context) ([]models.Whiskey, error) {
	whiskies, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list whiskies", "error", err)
		return nil, err
	}
	return whiskies, nil
}

// Search filters the catalog.
func (s *WhiskeyService) Search(ctx context.Context, filter models.WhiskeyFilter) ([]models.Whiskey, error) {
	whiskies, err := s.reader.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search whiskies", "filter", filter, "error", err)
		return nil, err
	}
	return whiskies, nil
}

// Get returns a catalog item, serving it from the cache when possible.
func (s *WhiskeyService) Get(ctx context.Context, id int64) (*models.Whiskey, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("failed to read whiskey cache", "id", id, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	whiskey, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get whiskey", "id", id, "error", err)
		return nil, err
	}
	if whiskey == nil {
		return nil, ErrWhiskeyNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, whiskey); err != nil {
			logger.Log.Warnw("failed to cache whiskey", "id", id, "error", err)
		}
	}
	return whiskey, nil
}

// Create adds a catalog item.
func (s *WhiskeyService) Create(ctx context.Context, attrs models.WhiskeyAttrs) (*models.Whiskey, error) {
	whiskey, err := s.writer.Save(ctx, attrs)
	if err != nil {
		logger.Log.Errorw("failed to create whiskey", "error", err)
		return nil, err
	}
	return whiskey, nil
}

// Update changes the given fields of a catalog item.
func (s *WhiskeyService) Update(ctx context.Context, id int64, attrs models.WhiskeyAttrs) (*models.Whiskey, error) {
	whiskey, err := s.writer.Update(ctx, id, attrs)
	if err != nil {
		logger.Log.Errorw("failed to update whiskey", "id", id, "error", err)
		return nil, err
	}
	if whiskey == nil {
		return nil, ErrWhiskeyNotFound
	}
	s.evict(ctx, id)
	return whiskey, nil
}

// Delete removes a catalog item.
func (s *WhiskeyService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete whiskey", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrWhiskeyNotFound
	}
	s.evict(ctx, id)
	return nil
}

func (s *WhiskeyService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("failed to evict whiskey from cache", "id", id, "error", err)
	}
}
