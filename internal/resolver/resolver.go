// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ohp/ohp-config/internal/logger"
)

// HostResolver resolves the address of the machine the process runs on.
//
//go:generate mockgen -source=resolver.go -destination=../mock/host_resolver_mock.go -package=mock
type HostResolver interface {
	Resolve(ctx context.Context) (string, error)
}

type hostnameFunc func() (string, error)

type lookupFunc func(ctx context.Context, network, host string) ([]net.IP, error)

type hostResolver struct {
	hostname hostnameFunc
	lookupIP lookupFunc
	timeout  time.Duration

	logger *logger.Logger
}

// NewHostResolver returns a [HostResolver] backed by the operating system's
// hostname and the default net resolver. A zero timeout leaves the lookup
// unbounded.
func NewHostResolver(timeout time.Duration, logger *logger.Logger) HostResolver {
	return &hostResolver{
		hostname: os.Hostname,
		lookupIP: net.DefaultResolver.LookupIP,
		timeout:  timeout,
		logger:   logger,
	}
}

func (r *hostResolver) Resolve(ctx context.Context) (string, error) {
	hostname, err := r.hostname()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHostnameLookup, err)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug().Str("hostname", hostname).Dur("timeout", r.timeout).Msg("resolving local hostname")

	ips, err := r.lookupIP(ctx, "ip4", hostname)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrAddressLookup, hostname, err)
	}

	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoIPv4Address, hostname)
}

// Static is a [HostResolver] that always returns the same address. It is
// used when the host address is supplied by the operator.
type Static string

func (s Static) Resolve(context.Context) (string, error) {
	return string(s), nil
}
