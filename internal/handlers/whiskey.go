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

//go:generate mockgen -source=whiskey.go -destination=mock_whiskey.go -package=handlers

// WhiskeyManager defines the catalog operations the handlers need.
type WhiskeyManager interface {
	List(ctx context.Context) ([]models.Whiskey, error)
	Search(ctx context.Context, filter models.WhiskeyFilter) ([]models.Whiskey, error)
	Get(ctx context.Context, id int64) (*models.Whiskey, error)
	Create(ctx context.Context, attrs models.WhiskeyAttrs) (*models.Whiskey, error)
	Update(ctx context.Context, id int64, attrs models.WhiskeyAttrs) (*models.Whiskey, error)
	Delete(ctx context.Context, id int64) error
}

// CreateWhiskeyRequest represents the JSON body for adding a whiskey to the catalog
// swagger:model CreateWhiskeyRequest
type CreateWhiskeyRequest struct {
	// required: true
	// default: Lagavulin 16
	Name string `json:"name" validate:"required,max=255"`
	// required: true
	// default: Lagavulin
	Distillery string `json:"distillery" validate:"required,max=255"`
	// required: true
	// default: Single Malt
	Type string `json:"type" validate:"required,max=255"`
	// required: true
	// default: Scotland
	Country     string   `json:"country" validate:"required,max=255"`
	Region      *string  `json:"region" validate:"omitempty,max=255"`
	Age         *int     `json:"age" validate:"omitempty,min=0"`
	ABV         *float64 `json:"abv" validate:"omitempty,min=0,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=2048"`
}

// UpdateWhiskeyRequest represents a partial catalog update. Omitted fields keep their value,
// null clears an optional field.
// swagger:model UpdateWhiskeyRequest
type UpdateWhiskeyRequest struct {
	Name        *string                    `json:"name" validate:"omitempty,min=1,max=255"`
	Distillery  *string                    `json:"distillery" validate:"omitempty,min=1,max=255"`
	Type        *string                    `json:"type" validate:"omitempty,min=1,max=255"`
	Country     *string                    `json:"country" validate:"omitempty,min=1,max=255"`
	Region      nullable.Nullable[string]  `json:"region" swaggertype:"string" validate:"omitempty,max=255"`
	Age         nullable.Nullable[int]     `json:"age" swaggertype:"integer" validate:"omitempty,min=0"`
	ABV         nullable.Nullable[float64] `json:"abv" swaggertype:"number" validate:"omitempty,min=0,max=100"`
	Price       nullable.Nullable[float64] `json:"price" swaggertype:"number" validate:"omitempty,min=0"`
	Description nullable.Nullable[string]  `json:"description" swaggertype:"string"`
	ImageURL    nullable.Nullable[string]  `json:"imageUrl" swaggertype:"string" validate:"omitempty,max=2048"`
}

// NewListWhiskiesHandler returns an HTTP handler listing the catalog.
// @Summary List whiskies
// @Tags whiskies
// @Produce json
// @Success 200 {array} models.Whiskey
// @Failure 500 {object} handlers.MessageResponse
// @Router /whiskies [get]
func NewListWhiskiesHandler(svc WhiskeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		whiskies, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list whiskies", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error fetching whiskies")
			return
		}
		writeJSON(w, http.StatusOK, whiskies)
	}
}

// NewSearchWhiskiesHandler returns an HTTP handler searching the catalog.
// @Summary Search whiskies
// @Description Case-insensitive match of query against name and distillery, exact match of type and country
// @Tags whiskies
// @Produce json
// @Param query query string false "Name or distillery fragment"
// @Param type query string false "Whiskey type"
// @Param country query string false "Country"
// @Success 200 {array} models.Whiskey
// @Failure 500 {object} handlers.MessageResponse
// @Router /whiskies/search [get]
func NewSearchWhiskiesHandler(svc WhiskeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := models.WhiskeyFilter{
			Query:   q.Get("query"),
			Type:    q.Get("type"),
			Country: q.Get("country"),
		}

		whiskies, err := svc.Search(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to search whiskies", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error searching whiskies")
			return
		}
		writeJSON(w, http.StatusOK, whiskies)
	}
}

// NewGetWhiskeyHandler returns an HTTP handler for a single catalog item.
// @Summary Get whiskey
// @Tags whiskies
// @Produce json
// @Param id path int true "Whiskey ID"
// @Success 200 {object} models.Whiskey
// @Failure 400 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.MessageResponse
// @Router /whiskies/{id} [get]
func NewGetWhiskeyHandler(svc WhiskeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid whiskey id")
			return
		}

		whiskey, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrWhiskeyNotFound) {
				writeMessage(w, http.StatusNotFound, "Whiskey not found")
				return
			}
			logger.Log.Errorw("failed to get whiskey", "id", id, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error fetching whiskey")
			return
		}
		writeJSON(w, http.StatusOK, whiskey)
	}
}

// NewCreateWhiskeyHandler returns an HTTP handler adding a catalog item.
// @Summary Create whiskey
// @Tags whiskies
// @Accept json
// @Produce json
// @Param whiskey body handlers.CreateWhiskeyRequest true "Whiskey"
// @Success 201 {object} models.Whiskey
// @Failure 400 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.MessageResponse
// @Router /whiskies [post]
// @Security BearerAuth
func NewCreateWhiskeyHandler(svc WhiskeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWhiskeyRequest
		if err := decodeRequest(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		whiskey, err := svc.Create(r.Context(), models.WhiskeyAttrs{
			Name:        &req.Name,
			Distillery:  &req.Distillery,
			Type:        &req.Type,
			Country:     &req.Country,
			Region:      nullableFrom(req.Region),
			Age:         nullableFrom(req.Age),
			ABV:         nullableFrom(req.ABV),
			Price:       nullableFrom(req.Price),
			Description: nullableFrom(req.Description),
			ImageURL:    nullableFrom(req.ImageURL),
		})
		if err != nil {
			logger.Log.Errorw("failed to create whiskey", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error creating whiskey")
			return
		}
		writeJSON(w, http.StatusCreated, whiskey)
	}
}

// NewUpdateWhiskeyHandler returns an HTTP handler updating a catalog item.
// @Summary Update whiskey
// @Tags whiskies
// @Accept json
// @Produce json
// @Param id path int true "Whiskey ID"
// @Param whiskey body handlers.UpdateWhiskeyRequest true "Fields to change"
// @Success 200 {object} models.Whiskey
// @Failure 400 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.MessageResponse
// @Router /whiskies/{id} [put]
// @Security BearerAuth
func NewUpdateWhiskeyHandler(svc WhiskeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid whiskey id")
			return
		}

		var req UpdateWhiskeyRequest
		if err := decodeRequest(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		whiskey, err := svc.Update(r.Context(), id, models.WhiskeyAttrs(req))
		if err != nil {
			if errors.Is(err, services.ErrWhiskeyNotFound) {
				writeMessage(w, http.StatusNotFound, "Whiskey not found")
				return
			}
			logger.Log.Errorw("failed to update whiskey", "id", id, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error updating whiskey")
			return
		}
		writeJSON(w, http.StatusOK, whiskey)
	}
}

// NewDeleteWhiskeyHandler returns an HTTP handler removing a catalog item.
// @Summary Delete whiskey
// @Tags whiskies
// @Produce json
// @Param id path int true "Whiskey ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.MessageResponse
// @Router /whiskies/{id} [delete]
// @Security BearerAuth
func NewDeleteWhiskeyHandler(svc WhiskeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid whiskey id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrWhiskeyNotFound) {
				writeMessage(w, http.StatusNotFound, "Whiskey not found")
				return
			}
			logger.Log.Errorw("failed to delete whiskey", "id", id, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error deleting whiskey")
			return
		}
		writeMessage(w, http.StatusOK, "Whiskey deleted successfully")
	}
}
