package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-hydroponics/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserDB, error)
}

// Loginer issues tokens for valid credentials.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Logouter revokes the caller's token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// example: grower@example.com
	Email string `json:"email"`

	// example: grower_1
	Username string `json:"username"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account. Email must be unique regardless of case. The password is stored hashed and never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, duplicate username or email"
// @Router /register/ [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{Email: user.Email, Username: user.Username})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Exchanges username and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Credentials"
// @Success 200 {object} handlers.LoginResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login/ [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// NewLogoutHandler returns an HTTP handler revoking the presented token.
// @Summary Log out
// @Description Revokes the bearer token until it expires
// @Tags auth
// @Security BearerAuth
// @Success 204 "Token revoked"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /logout/ [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), claims.TokenID, claims.ExpiresAt); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
