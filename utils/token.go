package utils

import "github.com/google/uuid"

// NewID returns a fresh identifier for a stored record.
func NewID() string {
	return uuid.NewString()
}

// NewSessionToken returns the opaque credential handed to a client at
// registration. It carries no claims; it only keys the user row.
func NewSessionToken() string {
	return uuid.NewString()
}
