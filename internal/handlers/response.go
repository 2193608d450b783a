package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/sbilibin2017/gw-hydroponics/internal/filters"
	"github.com/sbilibin2017/gw-hydroponics/internal/jwt"
	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
	"github.com/sbilibin2017/gw-hydroponics/internal/middlewares"
	"github.com/sbilibin2017/gw-hydroponics/internal/services"
)

// Route prefixes shared by the router and the hyperlinks in representations.
const (
	RegisterPath     = "/register/"
	LoginPath        = "/login/"
	LogoutPath       = "/logout/"
	SystemsPath      = "/hydroponic-systems/"
	MeasurementsPath = "/measurements/"
	SwaggerPath      = "/swagger/index.html"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid input.
	Error string `json:"error"`

	// Per-field messages, present on validation errors only
	Fields map[string][]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service and filter errors to status codes.
// Unknown errors are logged and reported as 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	var perr *filters.ParamError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid input.", Fields: verr.Fields})
	case errors.As(err, &perr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters.", Fields: perr.Fields})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, services.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, "You do not have permission to perform this action.")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found.")
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"err", err,
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON decodes the request body into v, answering 400 on failure.
// A value of the wrong JSON type is reported against its field.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	logger.Log.Warnw("invalid request body", "err", err)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "Invalid input.",
			Fields: map[string][]string{typeErr.Field: {typeMismatchMessage(typeErr)}},
		})
		return false
	}

	writeError(w, http.StatusBadRequest, "JSON parse error - "+err.Error())
	return false
}

func typeMismatchMessage(err *json.UnmarshalTypeError) string {
	if err.Type != nil && err.Type.Kind() == reflect.String {
		return "Not a valid string."
	}
	return fmt.Sprintf("Incorrect type. Expected %s, received %s.", err.Type, err.Value)
}

// requestClaims returns the authenticated caller, answering 401 when absent.
func requestClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return nil, false
	}
	return claims, true
}

// baseURL is the scheme and host the client used to reach the API.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host
}
