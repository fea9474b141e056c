package service

import "errors"

// ErrUpstreamUnavailable is returned when the feed could not be read.
var ErrUpstreamUnavailable = errors.New("giveaway feed unavailable")
