package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/oapi-codegen/nullable"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
)

//go:generate mockgen -source=collection.go -destination=mock_collection.go -package=handlers

// CollectionManager defines the collection operations the handlers need.
type CollectionManager interface {
	List(ctx context.Context, userID int64) ([]models.CollectionEntry, error)
	Add(ctx context.Context, userID, whiskeyID int64, attrs models.CollectionAttrs) (*models.CollectionEntry, error)
	Update(ctx context.Context, userID, entryID int64, attrs models.CollectionAttrs) (*models.CollectionEntry, error)
	Remove(ctx context.Context, userID, entryID int64) error
}

// CollectionEntryFields are the user-editable fields of a collection entry.
// On update omitted fields keep their value; null clears purchaseDate, purchasePrice and notes.
// swagger:model CollectionEntryFields
type CollectionEntryFields struct {
	// RFC 3339 timestamp or YYYY-MM-DD, empty clears the date
	// default: 2024-03-01
	PurchaseDate  nullable.Nullable[string]  `json:"purchaseDate" swaggertype:"string"`
	PurchasePrice nullable.Nullable[float64] `json:"purchasePrice" swaggertype:"number" validate:"omitempty,min=0"`
	Notes         nullable.Nullable[string]  `json:"notes" swaggertype:"string"`
	// enum: sealed,opened,empty
	BottleStatus *string `json:"bottleStatus" validate:"omitempty,oneof=sealed opened empty"`
}

func (f CollectionEntryFields) attrs() (models.CollectionAttrs, error) {
	attrs := models.CollectionAttrs{
		PurchasePrice: f.PurchasePrice,
		Notes:         f.Notes,
	}
	if f.PurchaseDate.IsSpecified() {
		raw, err := f.PurchaseDate.Get()
		if err != nil || raw == "" {
			attrs.PurchaseDate.SetNull()
		} else {
			date, err := parseDate(raw)
			if err != nil {
				return attrs, err
			}
			attrs.PurchaseDate.Set(date)
		}
	}
	if f.BottleStatus != nil {
		status := models.BottleStatus(*f.BottleStatus)
		attrs.BottleStatus = &status
	}
	return attrs, nil
}

// AddToCollectionRequest represents the JSON body for adding a whiskey to the collection
// swagger:model AddToCollectionRequest
type AddToCollectionRequest struct {
	// required: true
	// default: 1
	WhiskeyID int64 `json:"whiskeyId" validate:"required,gt=0"`
	CollectionEntryFields
}

// NewGetCollectionHandler returns an HTTP handler listing the caller's collection.
// @Summary Get collection
// @Description Returns the caller's collection entries with their whiskey
// @Tags collection
// @Produce json
// @Success 200 {array} models.CollectionEntry
// @Failure 401 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.MessageResponse
// @Router /collection [get]
// @Security BearerAuth
func NewGetCollectionHandler(svc CollectionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		entries, err := svc.List(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to fetch collection", "userID", user.ID, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error fetching collection")
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// NewAddToCollectionHandler returns an HTTP handler adding a whiskey to the caller's collection.
// @Summary Add to collection
// @Tags collection
// @Accept json
// @Produce json
// @Param entry body handlers.AddToCollectionRequest true "Collection entry"
// @Success 201 {object} models.CollectionEntry
// @Failure 400 {object} handlers.MessageResponse "Invalid request / Whiskey already in collection"
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Whiskey not found"
// @Failure 500 {object} handlers.MessageResponse
// @Router /collection [post]
// @Security BearerAuth
func NewAddToCollectionHandler(svc CollectionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req AddToCollectionRequest
		if err := decodeRequest(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		attrs, err := req.attrs()
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid purchaseDate")
			return
		}

		entry, err := svc.Add(r.Context(), user.ID, req.WhiskeyID, attrs)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWhiskeyNotFound):
				writeMessage(w, http.StatusNotFound, "Whiskey not found")
			case errors.Is(err, services.ErrAlreadyInCollection):
				writeMessage(w, http.StatusBadRequest, "Whiskey already in collection")
			default:
				logger.Log.Errorw("failed to add to collection", "userID", user.ID, "error", err)
				writeMessage(w, http.StatusInternalServerError, "Error adding to collection")
			}
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

// NewUpdateCollectionEntryHandler returns an HTTP handler updating an entry the caller owns.
// @Summary Update collection entry
// @Tags collection
// @Accept json
// @Produce json
// @Param id path int true "Collection entry ID"
// @Param entry body handlers.CollectionEntryFields true "Fields to change"
// @Success 200 {object} models.CollectionEntry
// @Failure 400 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Collection entry not found"
// @Failure 500 {object} handlers.MessageResponse
// @Router /collection/{id} [put]
// @Security BearerAuth
func NewUpdateCollectionEntryHandler(svc CollectionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid collection entry id")
			return
		}

		var req CollectionEntryFields
		if err := decodeRequest(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		attrs, err := req.attrs()
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid purchaseDate")
			return
		}

		entry, err := svc.Update(r.Context(), user.ID, id, attrs)
		if err != nil {
			if errors.Is(err, services.ErrCollectionEntryNotFound) {
				writeMessage(w, http.StatusNotFound, "Collection entry not found")
				return
			}
			logger.Log.Errorw("failed to update collection entry", "userID", user.ID, "entryID", id, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error updating collection entry")
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

// NewRemoveFromCollectionHandler returns an HTTP handler removing an entry the caller owns.
// @Summary Remove from collection
// @Tags collection
// @Produce json
// @Param id path int true "Collection entry ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Collection entry not found"
// @Failure 500 {object} handlers.MessageResponse
// @Router /collection/{id} [delete]
// @Security BearerAuth
func NewRemoveFromCollectionHandler(svc CollectionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid collection entry id")
			return
		}

		if err := svc.Remove(r.Context(), user.ID, id); err != nil {
			if errors.Is(err, services.ErrCollectionEntryNotFound) {
				writeMessage(w, http.StatusNotFound, "Collection entry not found")
				return
			}
			logger.Log.Errorw("failed to remove from collection", "userID", user.ID, "entryID", id, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error removing from collection")
			return
		}
		writeMessage(w, http.StatusOK, "Removed from collection successfully")
	}
}
