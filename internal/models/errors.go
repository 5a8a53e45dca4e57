package models

import (
	"errors"
)

var (
	// ErrDatabase wraps every error returned by the underlying store.
	ErrDatabase = errors.New("database error")

	// ErrResourceNotFound is returned when a record addressed by its key does not exist.
	ErrResourceNotFound = errors.New("there is no")
)
