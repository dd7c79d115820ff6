package entities

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTitle       = errors.New("title must be between 1 and 255 characters")
	ErrInvalidDescription = errors.New("description must not exceed 1000 characters")
	ErrInvalidOwnerID     = errors.New("owner id must be between 1 and 255 characters")
)

// Token decode failure kinds. These are used for logging only and are
// never surfaced to clients (all of them map to ErrUnauthorized at the
// API boundary).
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrMissingSubject = errors.New("token has no subject")
)

// Field length bounds
const (
	TitleMaxLen       = 255
	DescriptionMaxLen = 1000
	OwnerIDMaxLen     = 255
)

// Task represents a unit of work owned by exactly one user
type Task struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewTask builds a task with a fresh id and equal creation timestamps.
func NewTask(ownerID, title string, description *string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Completed:   false,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ValidateTitle checks the title length bounds
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 1 || n > TitleMaxLen {
		return ErrInvalidTitle
	}
	return nil
}

// ValidateDescription checks the description length bound
func ValidateDescription(description *string) error {
	if description == nil {
		return nil
	}
	if utf8.RuneCountInString(*description) > DescriptionMaxLen {
		return ErrInvalidDescription
	}
	return nil
}

// ValidateOwnerID checks the owner id length bounds
func ValidateOwnerID(ownerID string) error {
	n := utf8.RuneCountInString(ownerID)
	if n < 1 || n > OwnerIDMaxLen {
		return ErrInvalidOwnerID
	}
	return nil
}

// Identity is the verified caller identity extracted from a bearer token
type Identity struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
}
