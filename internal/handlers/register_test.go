package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/middlewares"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(middlewares.WithUser(r.Context(), user))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body MessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Message
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	john := &models.User{ID: 1, Username: "john", Email: "john@example.com", PasswordHash: "hash"}

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(john, "token123", nil)
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "User registered successfully",
		},
		{
			name: "user already exists",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(nil, "", services.ErrUserAlreadyExists)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Username or email already exists",
		},
		{
			name: "internal server error",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Server error during registration",
		},
		{
			name:            "invalid json",
			body:            `{invalid json}`,
			mockSetup:       func(m *MockRegisterer) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "invalid email",
			body:            `{"username":"john","email":"not-an-email","password":"secret"}`,
			mockSetup:       func(m *MockRegisterer) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid value for 'email': failed on 'email'",
		},
		{
			name:            "missing password",
			body:            `{"username":"john","email":"john@example.com"}`,
			mockSetup:       func(m *MockRegisterer) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid value for 'password': failed on 'required'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusCreated {
				assert.Equal(t, tt.expectedMessage, decodeMessage(t, rr))
				return
			}

			var resp AuthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, "token123", resp.Token)
			assert.Equal(t, UserResponse{ID: 1, Username: "john", Email: "john@example.com"}, resp.User)
		})
	}
}

func TestRegisterHandler_NeverLeaksHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.User{ID: 1, Username: "john", Email: "john@example.com", PasswordHash: "$2a$10$secret"}, "t", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		bytes.NewBufferString(`{"username":"john","email":"john@example.com","password":"secret"}`))
	rr := httptest.NewRecorder()
	NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "$2a$10$")
	assert.NotContains(t, rr.Body.String(), "secret")
}
