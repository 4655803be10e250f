package http

import (
	"errors"

	"influencer-srv/internal/influencer"
	pkgErrors "influencer-srv/pkg/errors"
)

var (
	errInvalidRequest  = pkgErrors.NewHTTPError(400, "Invalid request body")
	errProfileNotFound = pkgErrors.NewHTTPError(404, "Influencer profile not found")
	errInvalidPlatform = pkgErrors.NewHTTPError(400, "Invalid platform")
	errCreatorRequired = pkgErrors.NewHTTPError(400, "Creator ID is required")
	errStoreFailed     = pkgErrors.NewHTTPError(500, "Profile store operation failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, influencer.ErrProfileNotFound):
		return errProfileNotFound
	case errors.Is(err, influencer.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, influencer.ErrCreatorRequired):
		return errCreatorRequired
	case errors.Is(err, influencer.ErrStoreFailed):
		return errStoreFailed
	default:
		panic(err)
	}
}
