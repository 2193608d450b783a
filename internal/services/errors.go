package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when the requested object does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when the object exists but belongs to another user.
	ErrPermissionDenied = errors.New("you do not have permission to perform this action")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Field validation messages.
const (
	msgRequired      = "This field is required."
	msgBlank         = "This field may not be blank."
	msgInvalidNumber = "A valid number is required."
	msgInvalidEmail  = "Enter a valid email address."
	msgEmailTaken    = "user with this email already exists."
	msgUsernameTaken = "A user with that username already exists."
	msgInvalidUser   = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgSlugTaken     = "hydroponic system with this slug already exists."
	msgNotOwnSystem  = "You can only create measurements for your own hydroponic systems"
	msgNoSuchSystem  = "Invalid hyperlink - Object does not exist."
	msgBadHyperlink  = "Invalid hyperlink - Incorrect URL match."
)

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// orNil returns e as an error only when it holds at least one field.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
