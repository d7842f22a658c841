package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/middlewares"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

// MessageResponse is the body of confirmations and errors
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Whiskey not found
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names in validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// validate nullable fields by their value; unspecified and null pass omitempty
	v.RegisterCustomTypeFunc(nullableValue[string], nullable.Nullable[string]{})
	v.RegisterCustomTypeFunc(nullableValue[int], nullable.Nullable[int]{})
	v.RegisterCustomTypeFunc(nullableValue[float64], nullable.Nullable[float64]{})
	return v
}

func nullableValue[T any](field reflect.Value) any {
	n, ok := field.Interface().(nullable.Nullable[T])
	if !ok {
		return nil
	}
	if v, err := n.Get(); err == nil {
		return v
	}
	return nil
}

// nullableFrom treats a nil pointer as unspecified.
func nullableFrom[T any](p *T) nullable.Nullable[T] {
	if p == nil {
		return nil
	}
	return nullable.NewNullableWithValue(*p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

// decodeRequest decodes the JSON body into dst and checks its validate tags.
func decodeRequest(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// validationMessage renders a decodeRequest error for the client.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("Invalid value for '%s': failed on '%s'", verrs[0].Field(), verrs[0].Tag())
	}
	return "Invalid request body"
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// currentUser returns the identity attached by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Authorization token required")
		return nil, false
	}
	return user, true
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
