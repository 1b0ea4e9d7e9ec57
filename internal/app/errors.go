package app

import "errors"

// ErrNoHostAddress is returned when the resolver yields an empty address.
var ErrNoHostAddress = errors.New("empty real machine address")
