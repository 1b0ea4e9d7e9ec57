// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/ohp/ohp-config/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(hostname hostnameFunc, lookup lookupFunc, timeout time.Duration) *hostResolver {
	return &hostResolver{
		hostname: hostname,
		lookupIP: lookup,
		timeout:  timeout,
		logger:   logger.Nop(),
	}
}

func fixedHostname(name string) hostnameFunc {
	return func() (string, error) { return name, nil }
}

func TestResolve_ReturnsFirstIPv4(t *testing.T) {
	var gotNetwork, gotHost string
	r := newTestResolver(fixedHostname("honeypot-1"), func(_ context.Context, network, host string) ([]net.IP, error) {
		gotNetwork, gotHost = network, host
		return []net.IP{net.ParseIP("10.0.0.7"), net.ParseIP("10.0.0.8")}, nil
	}, 0)

	addr, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", addr)
	assert.Equal(t, "ip4", gotNetwork)
	assert.Equal(t, "honeypot-1", gotHost)
}

func TestResolve_SkipsIPv6(t *testing.T) {
	r := newTestResolver(fixedHostname("h"), func(context.Context, string, string) ([]net.IP, error) {
		return []net.IP{net.ParseIP("fe80::1"), net.ParseIP("192.168.1.20")}, nil
	}, 0)

	addr, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "192.168.1.20", addr)
}

func TestResolve_HostnameError(t *testing.T) {
	lookupCalled := false
	r := newTestResolver(func() (string, error) { return "", assert.AnError },
		func(context.Context, string, string) ([]net.IP, error) {
			lookupCalled = true
			return nil, nil
		}, 0)

	addr, err := r.Resolve(context.Background())

	assert.Empty(t, addr)
	assert.ErrorIs(t, err, ErrHostnameLookup)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, lookupCalled)
}

func TestResolve_LookupError(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "h", IsNotFound: true}
	r := newTestResolver(fixedHostname("h"), func(context.Context, string, string) ([]net.IP, error) {
		return nil, dnsErr
	}, 0)

	_, err := r.Resolve(context.Background())

	assert.ErrorIs(t, err, ErrAddressLookup)
	var target *net.DNSError
	assert.True(t, errors.As(err, &target))
}

func TestResolve_NoIPv4Address(t *testing.T) {
	r := newTestResolver(fixedHostname("h"), func(context.Context, string, string) ([]net.IP, error) {
		return []net.IP{net.ParseIP("::1")}, nil
	}, 0)

	_, err := r.Resolve(context.Background())

	assert.ErrorIs(t, err, ErrNoIPv4Address)
}

func TestResolve_EmptyResult(t *testing.T) {
	r := newTestResolver(fixedHostname("h"), func(context.Context, string, string) ([]net.IP, error) {
		return nil, nil
	}, 0)

	_, err := r.Resolve(context.Background())

	assert.ErrorIs(t, err, ErrNoIPv4Address)
}

// TestResolve_TimeoutBoundsLookup verifies that a configured timeout puts a
// deadline on the lookup context.
func TestResolve_TimeoutBoundsLookup(t *testing.T) {
	r := newTestResolver(fixedHostname("h"), func(ctx context.Context, _, _ string) ([]net.IP, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, 10*time.Millisecond)

	_, err := r.Resolve(context.Background())

	assert.ErrorIs(t, err, ErrAddressLookup)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestResolve_ZeroTimeoutLeavesNoDeadline verifies that the lookup is
// unbounded when no timeout is configured.
func TestResolve_ZeroTimeoutLeavesNoDeadline(t *testing.T) {
	r := newTestResolver(fixedHostname("h"), func(ctx context.Context, _, _ string) ([]net.IP, error) {
		_, hasDeadline := ctx.Deadline()
		assert.False(t, hasDeadline)
		return []net.IP{net.ParseIP("127.0.1.1")}, nil
	}, 0)

	addr, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "127.0.1.1", addr)
}

func TestResolve_CancelledContext(t *testing.T) {
	r := newTestResolver(fixedHostname("h"), func(ctx context.Context, _, _ string) ([]net.IP, error) {
		return nil, ctx.Err()
	}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewHostResolver_UsesSystemFunctions(t *testing.T) {
	r, ok := NewHostResolver(time.Second, logger.Nop()).(*hostResolver)
	require.True(t, ok)
	assert.NotNil(t, r.hostname)
	assert.NotNil(t, r.lookupIP)
	assert.Equal(t, time.Second, r.timeout)
}

func TestStatic_Resolve(t *testing.T) {
	addr, err := Static("172.17.0.1").Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "172.17.0.1", addr)
}
