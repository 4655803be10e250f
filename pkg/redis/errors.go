package redis

import (
	"errors"
	"time"
)

var (
	// ErrHostRequired is returned when no Redis host is configured.
	ErrHostRequired = errors.New("redis host is required")
	// ErrInvalidPort is returned when the Redis port is out of range.
	ErrInvalidPort = errors.New("redis port must be between 1 and 65535")
)

// DefaultConnectTimeout bounds the initial connection ping.
const DefaultConnectTimeout = 5 * time.Second
