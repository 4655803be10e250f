package repository

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrFailedToCreate = errors.New("failed to create")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToUpdate = errors.New("failed to update")
)
