package domain

import "errors"

var (
	// ErrNotFound signals that no record exists for the given id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID signals a malformed identifier, rejected before any
	// storage call.
	ErrInvalidID = errors.New("invalid id format")

	// ErrEmptyUpdate signals an update payload with no fields set.
	ErrEmptyUpdate = errors.New("no valid fields to update")
)
