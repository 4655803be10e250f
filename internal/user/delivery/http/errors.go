package http

import (
	"errors"

	"influencer-srv/internal/user"
	pkgErrors "influencer-srv/pkg/errors"
)

var (
	errInvalidRequest  = pkgErrors.NewHTTPError(400, "Invalid request body")
	errEmailExists     = pkgErrors.NewHTTPError(400, "Email already exists")
	errInvalidUserType = pkgErrors.NewHTTPError(400, "Invalid user type")
	errUserNotFound    = pkgErrors.NewHTTPError(404, "User not found")
	errWrongPassword   = pkgErrors.NewHTTPError(401, "Wrong password")
	errOAuthFailed     = pkgErrors.NewHTTPError(400, "Facebook code exchange failed")
	errStoreFailed     = pkgErrors.NewHTTPError(500, "User store operation failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailExists):
		return errEmailExists
	case errors.Is(err, user.ErrInvalidUserType):
		return errInvalidUserType
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrWrongPassword):
		return errWrongPassword
	case errors.Is(err, user.ErrOAuthExchangeFailed):
		return errOAuthFailed
	case errors.Is(err, user.ErrStoreFailed):
		return errStoreFailed
	default:
		panic(err)
	}
}
