package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the failure taxonomy of the core. Components
// translate storage-level failures into exactly one of these at their
// boundary; callers branch with errors.Is.
var (
	// ErrNotFound means a referenced user, article, or tag does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a uniqueness constraint (article slug) was violated.
	ErrConflict = errors.New("conflict")
	// ErrForbidden means the acting user does not own the target article.
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable means the storage layer failed; never retried here.
	ErrUnavailable = errors.New("storage unavailable")
)

// EntityError wraps a sentinel with the entity kind and key it concerns,
// so callers can build an actionable message without this core
// formatting user-facing text.
type EntityError struct {
	Kind string // "user", "article", "tag"
	Key  string // username, slug, or tag value
	Err  error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Key, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing entity of the given kind.
func NotFoundError(kind, key string) error {
	return &EntityError{Kind: kind, Key: key, Err: ErrNotFound}
}

// ConflictError reports a uniqueness violation on the given key.
func ConflictError(kind, key string) error {
	return &EntityError{Kind: kind, Key: key, Err: ErrConflict}
}

// ForbiddenError reports an ownership violation on the given key.
func ForbiddenError(kind, key string) error {
	return &EntityError{Kind: kind, Key: key, Err: ErrForbidden}
}
