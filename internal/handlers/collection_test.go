package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}

func TestGetCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists caller entries", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().List(gomock.Any(), int64(1)).Return([]models.CollectionEntry{
			{ID: 1, UserID: 1, WhiskeyID: 5, BottleStatus: models.BottleSealed, Whiskey: &models.Whiskey{ID: 5, Name: "Ardbeg 10"}},
		}, nil)

		rr := httptest.NewRecorder()
		NewGetCollectionHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/collection", nil), alice))
		assert.Equal(t, http.StatusOK, rr.Code)

		var entries []map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
		require.Len(t, entries, 1)
		assert.Equal(t, float64(1), entries[0]["UserId"])
		assert.Equal(t, float64(5), entries[0]["WhiskeyId"])
		whiskey, ok := entries[0]["Whiskey"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ardbeg 10", whiskey["name"])
		assert.NotContains(t, entries[0], "userId")
		assert.NotContains(t, entries[0], "whiskey")
	})

	t.Run("no identity", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		rr := httptest.NewRecorder()
		NewGetCollectionHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/collection", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("error", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().List(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		NewGetCollectionHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/collection", nil), alice))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Error fetching collection", decodeMessage(t, rr))
	})
}

func TestAddToCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockCollectionManager)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "added with date-only purchase date",
			body: `{"whiskeyId":5,"purchaseDate":"2024-03-01","purchasePrice":59.9,"bottleStatus":"opened"}`,
			mockSetup: func(m *MockCollectionManager) {
				m.EXPECT().Add(gomock.Any(), int64(1), int64(5), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ int64, attrs models.CollectionAttrs) (*models.CollectionEntry, error) {
						assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(attrs.PurchaseDate.MustGet()))
						assert.Equal(t, models.BottleOpened, *attrs.BottleStatus)
						assert.Equal(t, 59.9, attrs.PurchasePrice.MustGet())
						assert.False(t, attrs.Notes.IsSpecified())
						return &models.CollectionEntry{ID: 42}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "whiskey not found",
			body: `{"whiskeyId":5}`,
			mockSetup: func(m *MockCollectionManager) {
				m.EXPECT().Add(gomock.Any(), int64(1), int64(5), models.CollectionAttrs{}).Return(nil, services.ErrWhiskeyNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Whiskey not found",
		},
		{
			name: "already in collection",
			body: `{"whiskeyId":5}`,
			mockSetup: func(m *MockCollectionManager) {
				m.EXPECT().Add(gomock.Any(), int64(1), int64(5), gomock.Any()).Return(nil, services.ErrAlreadyInCollection)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Whiskey already in collection",
		},
		{
			name: "service error",
			body: `{"whiskeyId":5}`,
			mockSetup: func(m *MockCollectionManager) {
				m.EXPECT().Add(gomock.Any(), int64(1), int64(5), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Error adding to collection",
		},
		{
			name:            "missing whiskey id",
			body:            `{"notes":"gift"}`,
			mockSetup:       func(m *MockCollectionManager) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid value for 'whiskeyId': failed on 'required'",
		},
		{
			name:            "unknown bottle status",
			body:            `{"whiskeyId":5,"bottleStatus":"broken"}`,
			mockSetup:       func(m *MockCollectionManager) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid value for 'bottleStatus': failed on 'oneof'",
		},
		{
			name:            "bad purchase date",
			body:            `{"whiskeyId":5,"purchaseDate":"yesterday"}`,
			mockSetup:       func(m *MockCollectionManager) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid purchaseDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockCollectionManager(ctrl)
			tt.mockSetup(m)

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/collection", bytes.NewBufferString(tt.body)), alice)
			rr := httptest.NewRecorder()
			NewAddToCollectionHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeMessage(t, rr))
			}
		})
	}
}

func TestUpdateAndRemoveCollectionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newReq := func(method, body string) *http.Request {
		req := httptest.NewRequest(method, "/api/collection/42", bytes.NewBufferString(body))
		return withURLParam(withUser(req, alice), "id", "42")
	}

	t.Run("update", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().Update(gomock.Any(), int64(1), int64(42), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, attrs models.CollectionAttrs) (*models.CollectionEntry, error) {
				assert.Equal(t, "peaty", attrs.Notes.MustGet())
				assert.Nil(t, attrs.BottleStatus)
				assert.False(t, attrs.PurchasePrice.IsSpecified())
				assert.False(t, attrs.PurchaseDate.IsSpecified())
				return &models.CollectionEntry{ID: 42}, nil
			})

		rr := httptest.NewRecorder()
		NewUpdateCollectionEntryHandler(m).ServeHTTP(rr, newReq(http.MethodPut, `{"notes":"peaty"}`))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("update clears fields sent as null", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().Update(gomock.Any(), int64(1), int64(42), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, attrs models.CollectionAttrs) (*models.CollectionEntry, error) {
				assert.True(t, attrs.PurchasePrice.IsSpecified())
				assert.True(t, attrs.PurchasePrice.IsNull())
				assert.True(t, attrs.PurchaseDate.IsNull())
				assert.True(t, attrs.Notes.IsNull())
				assert.Nil(t, attrs.BottleStatus)
				return &models.CollectionEntry{ID: 42}, nil
			})

		rr := httptest.NewRecorder()
		NewUpdateCollectionEntryHandler(m).ServeHTTP(rr, newReq(http.MethodPut, `{"purchasePrice":null,"purchaseDate":"","notes":null}`))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("update rejects negative price", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)

		rr := httptest.NewRecorder()
		NewUpdateCollectionEntryHandler(m).ServeHTTP(rr, newReq(http.MethodPut, `{"purchasePrice":-1}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid value for 'purchasePrice': failed on 'min'", decodeMessage(t, rr))
	})

	t.Run("update entry of another user", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().Update(gomock.Any(), int64(1), int64(42), gomock.Any()).Return(nil, services.ErrCollectionEntryNotFound)

		rr := httptest.NewRecorder()
		NewUpdateCollectionEntryHandler(m).ServeHTTP(rr, newReq(http.MethodPut, `{"notes":"mine"}`))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Collection entry not found", decodeMessage(t, rr))
	})

	t.Run("update bad id", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		req := withURLParam(withUser(httptest.NewRequest(http.MethodPut, "/api/collection/x", bytes.NewBufferString(`{}`)), alice), "id", "x")
		rr := httptest.NewRecorder()
		NewUpdateCollectionEntryHandler(m).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("remove", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().Remove(gomock.Any(), int64(1), int64(42)).Return(nil)

		rr := httptest.NewRecorder()
		NewRemoveFromCollectionHandler(m).ServeHTTP(rr, newReq(http.MethodDelete, ""))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Removed from collection successfully", decodeMessage(t, rr))
	})

	t.Run("remove entry of another user", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().Remove(gomock.Any(), int64(1), int64(42)).Return(services.ErrCollectionEntryNotFound)

		rr := httptest.NewRecorder()
		NewRemoveFromCollectionHandler(m).ServeHTTP(rr, newReq(http.MethodDelete, ""))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("remove error", func(t *testing.T) {
		m := NewMockCollectionManager(ctrl)
		m.EXPECT().Remove(gomock.Any(), int64(1), int64(42)).Return(errors.New("db error"))

		rr := httptest.NewRecorder()
		NewRemoveFromCollectionHandler(m).ServeHTTP(rr, newReq(http.MethodDelete, ""))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Error removing from collection", decodeMessage(t, rr))
	})
}
