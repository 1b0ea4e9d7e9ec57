// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/ohp/ohp-config/internal/config"
	"github.com/ohp/ohp-config/internal/logger"
	"github.com/ohp/ohp-config/internal/protocol"
	"github.com/ohp/ohp-config/internal/resolver"
	"github.com/ohp/ohp-config/internal/service"
	"github.com/ohp/ohp-config/internal/utils"
)

// App holds the values computed once at process start and the services
// built on them.
type App struct {
	// Protocols maps IP protocol numbers to their short names. It is not
	// part of any configuration document; packet-capture consumers use it
	// to name decoded protocols.
	Protocols protocol.Table

	// HostAddress is the resolved address of the real machine.
	HostAddress string

	Services *service.Services
}

// New resolves the host address and builds the protocol table, then wires
// the configuration service. A resolution failure is returned as is: it is
// fatal for the caller because the network configuration depends on it.
func New(ctx context.Context, cfg *config.StructuredConfig, hostResolver resolver.HostResolver, tokens utils.TokenGenerator, log *logger.Logger) (*App, error) {
	log.Debug().Msg(MsgResolvingHostAddress)

	hostAddress, err := hostResolver.Resolve(ctx)
	if err != nil {
		log.Error().Err(err).Msg(MsgHostAddressFailed)
		return nil, fmt.Errorf("error bootstrapping: %w", err)
	}
	if hostAddress == "" {
		log.Error().Msg(MsgHostAddressFailed)
		return nil, fmt.Errorf("error bootstrapping: %w", ErrNoHostAddress)
	}

	log.Info().Str("real_machine_ip_address", hostAddress).Msg(MsgHostAddressResolved)

	protocols := protocol.BuildTable()
	if len(protocols) == 0 {
		log.Warn().Msg(MsgProtocolTableEmpty)
	} else {
		log.Debug().Int("protocols", len(protocols)).Msg(MsgProtocolTableBuilt)
	}

	env := service.Environment{DockerDatabase: cfg.Database.UseDocker()}

	return &App{
		Protocols:   protocols,
		HostAddress: hostAddress,
		Services:    service.NewServices(env, hostAddress, tokens, log.WithRole("assembler")),
	}, nil
}

// NewHostResolver picks the resolver for cfg: a fixed address when one is
// configured, the operating system's resolver otherwise.
func NewHostResolver(cfg config.Resolver, log *logger.Logger) resolver.HostResolver {
	if cfg.HostAddress != "" {
		return resolver.Static(cfg.HostAddress)
	}

	return resolver.NewHostResolver(cfg.Timeout, log.WithRole("resolver"))
}
