package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWhiskeyService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	laga := &models.Whiskey{ID: 3, Name: "Lagavulin 16", Distillery: "Lagavulin"}

	tests := []struct {
		name     string
		setup    func(r *services.MockWhiskeyReader, c *services.MockWhiskeyCache)
		want     *models.Whiskey
		wantErr  error
		useCache bool
	}{
		{
			name:     "cache hit skips repository",
			useCache: true,
			setup: func(r *services.MockWhiskeyReader, c *services.MockWhiskeyCache) {
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(laga, nil)
			},
			want: laga,
		},
		{
			name:     "cache miss populates cache",
			useCache: true,
			setup: func(r *services.MockWhiskeyReader, c *services.MockWhiskeyCache) {
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, nil)
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(laga, nil)
				c.EXPECT().Set(gomock.Any(), laga).Return(nil)
			},
			want: laga,
		},
		{
			name:     "cache failure falls back to repository",
			useCache: true,
			setup: func(r *services.MockWhiskeyReader, c *services.MockWhiskeyCache) {
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, errors.New("redis down"))
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(laga, nil)
				c.EXPECT().Set(gomock.Any(), laga).Return(errors.New("redis down"))
			},
			want: laga,
		},
		{
			name: "no cache configured",
			setup: func(r *services.MockWhiskeyReader, c *services.MockWhiskeyCache) {
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(laga, nil)
			},
			want: laga,
		},
		{
			name: "not found",
			setup: func(r *services.MockWhiskeyReader, c *services.MockWhiskeyCache) {
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErr: services.ErrWhiskeyNotFound,
		},
		{
			name: "repository error",
			setup: func(r *services.MockWhiskeyReader, c *services.MockWhiskeyCache) {
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockWhiskeyReader(ctrl)
			cache := services.NewMockWhiskeyCache(ctrl)
			tt.setup(reader, cache)

			var svc *services.WhiskeyService
			if tt.useCache {
				svc = services.NewWhiskeyService(reader, services.NewMockWhiskeyWriter(ctrl), cache)
			} else {
				svc = services.NewWhiskeyService(reader, services.NewMockWhiskeyWriter(ctrl), nil)
			}

			got, err := svc.Get(context.Background(), 3)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhiskeyService_ListAndSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockWhiskeyReader(ctrl)
	svc := services.NewWhiskeyService(reader, services.NewMockWhiskeyWriter(ctrl), nil)
	ctx := context.Background()

	all := []models.Whiskey{{ID: 1, Name: "Ardbeg 10"}, {ID: 2, Name: "Redbreast 12"}}
	filter := models.WhiskeyFilter{Query: "ard", Country: "Scotland"}

	reader.EXPECT().List(gomock.Any()).Return(all, nil)
	reader.EXPECT().Search(gomock.Any(), filter).Return(all[:1], nil)
	reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	found, err := svc.Search(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, all[:1], found)

	_, err = svc.List(ctx)
	assert.EqualError(t, err, "db error")
}

func TestWhiskeyService_Mutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockWhiskeyReader(ctrl)
	writer := services.NewMockWhiskeyWriter(ctrl)
	cache := services.NewMockWhiskeyCache(ctrl)
	svc := services.NewWhiskeyService(reader, writer, cache)
	ctx := context.Background()

	attrs := models.WhiskeyAttrs{Name: strPtr("Talisker 10")}
	talisker := &models.Whiskey{ID: 9, Name: "Talisker 10"}

	t.Run("create", func(t *testing.T) {
		writer.EXPECT().Save(gomock.Any(), attrs).Return(talisker, nil)
		got, err := svc.Create(ctx, attrs)
		require.NoError(t, err)
		assert.Equal(t, talisker, got)
	})

	t.Run("update evicts cache", func(t *testing.T) {
		writer.EXPECT().Update(gomock.Any(), int64(9), attrs).Return(talisker, nil)
		cache.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)
		got, err := svc.Update(ctx, 9, attrs)
		require.NoError(t, err)
		assert.Equal(t, talisker, got)
	})

	t.Run("update missing", func(t *testing.T) {
		writer.EXPECT().Update(gomock.Any(), int64(10), attrs).Return(nil, nil)
		_, err := svc.Update(ctx, 10, attrs)
		assert.ErrorIs(t, err, services.ErrWhiskeyNotFound)
	})

	t.Run("delete evicts cache", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), int64(9)).Return(true, nil)
		cache.EXPECT().Delete(gomock.Any(), int64(9)).Return(errors.New("redis down"))
		assert.NoError(t, svc.Delete(ctx, 9))
	})

	t.Run("delete missing", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), int64(10)).Return(false, nil)
		assert.ErrorIs(t, svc.Delete(ctx, 10), services.ErrWhiskeyNotFound)
	})

	t.Run("delete error", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), int64(11)).Return(false, errors.New("db error"))
		assert.EqualError(t, svc.Delete(ctx, 11), "db error")
	})
}
