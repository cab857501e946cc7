// Package apperr holds the sentinel errors repositories return so handlers
// can map them onto HTTP status codes.
package apperr

import "errors"

var (
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("resource belongs to another user")
	ErrConflict  = errors.New("resource already exists")
	ErrClosed    = errors.New("resource no longer accepts changes")
	ErrInvalid   = errors.New("invalid input")
)

// CheckOwner returns ErrForbidden unless the row owner is the caller.
func CheckOwner(ownerID, userID uint) error {
	if ownerID != userID {
		return ErrForbidden
	}
	return nil
}
