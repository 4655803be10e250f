package http

import (
	"errors"

	"influencer-srv/internal/fetcher"
	pkgErrors "influencer-srv/pkg/errors"
)

var (
	errInvalidRequest  = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidInput    = pkgErrors.NewHTTPError(400, "Invalid fetch parameters")
	errChannelNotFound = pkgErrors.NewHTTPError(404, "Channel not found")
	errUserNotFound    = pkgErrors.NewHTTPError(404, "User not found")
	errFetchFailed     = pkgErrors.NewHTTPError(502, "Platform fetch failed")
	errStoreFailed     = pkgErrors.NewHTTPError(500, "Profile store operation failed")
	errQueueFailed     = pkgErrors.NewHTTPError(500, "Failed to enqueue fetch job")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, fetcher.ErrInvalidInput):
		return errInvalidInput
	case errors.Is(err, fetcher.ErrChannelNotFound):
		return errChannelNotFound
	case errors.Is(err, fetcher.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, fetcher.ErrFetchFailed):
		return errFetchFailed
	case errors.Is(err, fetcher.ErrStoreFailed):
		return errStoreFailed
	case errors.Is(err, fetcher.ErrQueueFailed):
		return errQueueFailed
	default:
		panic(err)
	}
}
