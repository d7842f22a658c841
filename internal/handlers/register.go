package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,max=255"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public part of a user
// swagger:model UserResponse
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is returned on successful registration and login
// swagger:model AuthResponse
type AuthResponse struct {
	// default: Login successful
	Message string `json:"message"`
	// Bearer token for the Authorization header
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func newAuthResponse(message, token string, user *models.User) AuthResponse {
	return AuthResponse{
		Message: message,
		Token:   token,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.MessageResponse "Username or email already exists / invalid request"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeRequest(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeMessage(w, http.StatusBadRequest, "Username or email already exists")
			default:
				logger.Log.Errorw("registration failed", "error", err)
				writeMessage(w, http.StatusInternalServerError, "Server error during registration")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newAuthResponse("User registered successfully", token, user))
	}
}
