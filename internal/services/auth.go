package services

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-hydroponics/internal/database"
	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
	"github.com/sbilibin2017/gw-hydroponics/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=services

const usernameMaxLength = 150

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// TokenRevoker remembers revoked token ids until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register validates the request and stores a new user with a bcrypt hash of
// the password. Duplicate usernames and emails are reported as field errors.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserDB, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	verr := &ValidationError{}
	switch {
	case username == "":
		verr.Add("username", msgRequired)
	case utf8.RuneCountInString(username) > usernameMaxLength:
		verr.Add("username", "Ensure this field has no more than 150 characters.")
	case !usernamePattern.MatchString(username):
		verr.Add("username", msgInvalidUser)
	}
	switch {
	case email == "":
		verr.Add("email", msgRequired)
	case !validEmail(email):
		verr.Add("email", msgInvalidEmail)
	}
	if req.Password == "" {
		verr.Add("password", msgRequired)
	}

	if !verr.Has("username") {
		existing, err := svc.reader.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "err", err)
			return nil, err
		}
		if existing != nil {
			verr.Add("username", msgUsernameTaken)
		}
	}
	if !verr.Has("email") {
		existing, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return nil, err
		}
		if existing != nil {
			verr.Add("email", msgEmailTaken)
		}
	}
	if err := verr.orNil(); err != nil {
		logger.Log.Warnw("registration rejected", "username", username, "fields", verr.Fields)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if constraint, ok := database.UniqueViolation(err); ok {
		// lost a race with a concurrent registration
		if strings.Contains(constraint, "email") {
			verr.Add("email", msgEmailTaken)
		} else {
			verr.Add("username", msgUsernameTaken)
		}
		return nil, verr
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.UserID, "username", user.Username)
	return user, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the token for the rest of its lifetime.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := svc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
