package influencer

import "errors"

var (
	// ErrProfileNotFound - profile does not exist or is soft-deleted
	ErrProfileNotFound = errors.New("influencer: profile not found")

	// ErrInvalidPlatform - platform outside the supported set
	ErrInvalidPlatform = errors.New("influencer: invalid platform")

	// ErrCreatorRequired - creator id missing
	ErrCreatorRequired = errors.New("influencer: creator_id is required")

	// ErrStoreFailed - persistence layer failure
	ErrStoreFailed = errors.New("influencer: store operation failed")
)
