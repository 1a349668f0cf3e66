package services

import "errors"

var (
	// ErrMealNotFound covers both a nonexistent meal and a meal owned by
	// another user; callers cannot tell the two apart.
	ErrMealNotFound = errors.New("meal not found")

	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is defensive: the register flow checks the email first
	// and returns the existing user, so this only fires on a race against
	// the unique index.
	ErrEmailTaken = errors.New("email already registered")
)
