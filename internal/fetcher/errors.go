package fetcher

import "errors"

var (
	ErrInvalidInput    = errors.New("fetcher: invalid input")
	ErrChannelNotFound = errors.New("fetcher: channel not found")
	ErrUserNotFound    = errors.New("fetcher: user not found")
	ErrFetchFailed     = errors.New("fetcher: platform fetch failed")
	ErrStoreFailed     = errors.New("fetcher: profile store failed")
	ErrQueueFailed     = errors.New("fetcher: failed to enqueue job")
)
