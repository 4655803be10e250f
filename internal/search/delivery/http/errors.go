package http

import (
	"errors"

	"influencer-srv/internal/search"
	pkgErrors "influencer-srv/pkg/errors"
)

var (
	errInvalidRequest = pkgErrors.NewHTTPError(400, "Invalid request")
	errQueryRequired  = pkgErrors.NewHTTPError(400, "Query is required")
	errQueryTooLong   = pkgErrors.NewHTTPError(400, "Query is too long")
	errOracleFailed   = pkgErrors.NewHTTPError(502, "Relevance engine is unavailable")
	errSearchFailed   = pkgErrors.NewHTTPError(500, "Search failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrQueryRequired):
		return errQueryRequired
	case errors.Is(err, search.ErrQueryTooLong):
		return errQueryTooLong
	case errors.Is(err, search.ErrOracleFailed):
		return errOracleFailed
	case errors.Is(err, search.ErrSearchFailed):
		return errSearchFailed
	default:
		panic(err)
	}
}
