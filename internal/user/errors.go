package user

import "errors"

var (
	ErrEmailExists         = errors.New("email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidUserType     = errors.New("invalid user type")
	ErrOAuthExchangeFailed = errors.New("oauth code exchange failed")
	ErrStoreFailed         = errors.New("user store operation failed")
)
