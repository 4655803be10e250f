package repository

import "influencer-srv/internal/model"

// CreateOptions carries a new user row. Password must already be hashed.
type CreateOptions struct {
	User model.User
}

// GetByEmailAndTypeOptions selects a non-deleted account by its login pair.
type GetByEmailAndTypeOptions struct {
	Email    string
	UserType model.UserType
}

// UpdateFBTokenOptions stores an exchanged Facebook access token and marks
// the account as Graph-connected.
type UpdateFBTokenOptions struct {
	UserID      string
	AccessToken string
}
