package domain

import "errors"

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSessionRevoked    = errors.New("session revoked or expired")
	ErrUnknownVendorKind = errors.New("unknown vendor kind")
	ErrLeaseLost         = errors.New("delivery lease lost")

	// ErrOrganizerLookup wraps any failure to find the organizer during sign-in, including ErrNotFound.
	ErrOrganizerLookup = errors.New("organizer lookup failed")
)
