package repository

import "errors"

var (
	ErrNotFound       = errors.New("influencer profile not found")
	ErrFailedToUpsert = errors.New("failed to upsert")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToDelete = errors.New("failed to delete")
)
