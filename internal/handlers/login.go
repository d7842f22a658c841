package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies the credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse "Login successful"
// @Failure 400 {object} handlers.MessageResponse "Invalid request"
// @Failure 404 {object} handlers.MessageResponse "User not found / Invalid password"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeRequest(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeMessage(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusNotFound, "Invalid password")
			default:
				logger.Log.Errorw("login failed", "error", err)
				writeMessage(w, http.StatusInternalServerError, "Server error during login")
			}
			return
		}

		writeJSON(w, http.StatusOK, newAuthResponse("Login successful", token, user))
	}
}
