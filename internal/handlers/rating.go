package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
)

//go:generate mockgen -source=rating.go -destination=mock_rating.go -package=handlers

// RatingManager defines the rating operations the handlers need.
type RatingManager interface {
	ListForWhiskey(ctx context.Context, whiskeyID int64) ([]models.Rating, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Rating, error)
	Rate(ctx context.Context, userID, whiskeyID int64, attrs models.RatingAttrs) (*models.Rating, error)
	Delete(ctx context.Context, userID, ratingID int64) error
}

// RateWhiskeyRequest represents the JSON body for rating a whiskey
// swagger:model RateWhiskeyRequest
type RateWhiskeyRequest struct {
	// required: true
	// minimum: 0
	// maximum: 100
	// default: 90
	Score  *int    `json:"score" validate:"required,min=0,max=100"`
	Nose   *int    `json:"nose" validate:"omitempty,min=0,max=10"`
	Taste  *int    `json:"taste" validate:"omitempty,min=0,max=10"`
	Finish *int    `json:"finish" validate:"omitempty,min=0,max=10"`
	Notes  *string `json:"notes"`
}

// NewGetWhiskeyRatingsHandler returns an HTTP handler listing every rating of a whiskey.
// @Summary Get whiskey ratings
// @Tags ratings
// @Produce json
// @Param whiskeyId path int true "Whiskey ID"
// @Success 200 {array} models.Rating
// @Failure 400 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.MessageResponse
// @Router /ratings/whiskey/{whiskeyId} [get]
func NewGetWhiskeyRatingsHandler(svc RatingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		whiskeyID, ok := pathID(r, "whiskeyId")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid whiskey id")
			return
		}

		ratings, err := svc.ListForWhiskey(r.Context(), whiskeyID)
		if err != nil {
			logger.Log.Errorw("failed to fetch ratings", "whiskeyID", whiskeyID, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error fetching ratings")
			return
		}
		writeJSON(w, http.StatusOK, ratings)
	}
}

// NewGetUserRatingsHandler returns an HTTP handler listing the caller's ratings.
// @Summary Get own ratings
// @Tags ratings
// @Produce json
// @Success 200 {array} models.Rating
// @Failure 401 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.MessageResponse
// @Router /ratings/user [get]
// @Security BearerAuth
func NewGetUserRatingsHandler(svc RatingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		ratings, err := svc.ListForUser(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to fetch user ratings", "userID", user.ID, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error fetching user ratings")
			return
		}
		writeJSON(w, http.StatusOK, ratings)
	}
}

// NewRateWhiskeyHandler returns an HTTP handler creating or replacing the caller's rating.
// @Summary Rate whiskey
// @Description Creates the caller's rating or overwrites the existing one
// @Tags ratings
// @Accept json
// @Produce json
// @Param whiskeyId path int true "Whiskey ID"
// @Param rating body handlers.RateWhiskeyRequest true "Rating"
// @Success 200 {object} models.Rating
// @Failure 400 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Whiskey not found"
// @Failure 500 {object} handlers.MessageResponse
// @Router /ratings/whiskey/{whiskeyId} [post]
// @Security BearerAuth
func NewRateWhiskeyHandler(svc RatingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		whiskeyID, ok := pathID(r, "whiskeyId")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid whiskey id")
			return
		}

		var req RateWhiskeyRequest
		if err := decodeRequest(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		rating, err := svc.Rate(r.Context(), user.ID, whiskeyID, models.RatingAttrs{
			Score:  *req.Score,
			Nose:   req.Nose,
			Taste:  req.Taste,
			Finish: req.Finish,
			Notes:  req.Notes,
		})
		if err != nil {
			if errors.Is(err, services.ErrWhiskeyNotFound) {
				writeMessage(w, http.StatusNotFound, "Whiskey not found")
				return
			}
			logger.Log.Errorw("failed to rate whiskey", "userID", user.ID, "whiskeyID", whiskeyID, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error rating whiskey")
			return
		}
		writeJSON(w, http.StatusOK, rating)
	}
}

// NewDeleteRatingHandler returns an HTTP handler deleting a rating the caller owns.
// @Summary Delete rating
// @Tags ratings
// @Produce json
// @Param id path int true "Rating ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Rating not found"
// @Failure 500 {object} handlers.MessageResponse
// @Router /ratings/{id} [delete]
// @Security BearerAuth
func NewDeleteRatingHandler(svc RatingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid rating id")
			return
		}

		if err := svc.Delete(r.Context(), user.ID, id); err != nil {
			if errors.Is(err, services.ErrRatingNotFound) {
				writeMessage(w, http.StatusNotFound, "Rating not found")
				return
			}
			logger.Log.Errorw("failed to delete rating", "userID", user.ID, "ratingID", id, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error deleting rating")
			return
		}
		writeMessage(w, http.StatusOK, "Rating deleted successfully")
	}
}
