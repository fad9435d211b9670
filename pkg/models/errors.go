package models

import "errors"

var (
	// ErrProfileNotFound is returned when a referenced profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidProfileName is returned before any persistence when a profile
	// name is empty or exceeds MaxProfileNameLen.
	ErrInvalidProfileName = errors.New("invalid profile name")
	// ErrInvalidInputMethod is returned for an unknown answer input method.
	ErrInvalidInputMethod = errors.New("invalid input method")
)
