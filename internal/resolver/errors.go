package resolver

import "errors"

// Errors returned by [HostResolver.Resolve]. They are wrapped with the
// underlying cause.
var (
	// ErrHostnameLookup indicates that the local hostname could not be read.
	ErrHostnameLookup = errors.New("error getting local hostname")
	// ErrAddressLookup indicates that the hostname could not be resolved.
	ErrAddressLookup = errors.New("error resolving local hostname")
	// ErrNoIPv4Address indicates that the hostname resolved to no IPv4 address.
	ErrNoIPv4Address = errors.New("hostname has no IPv4 address")
)
