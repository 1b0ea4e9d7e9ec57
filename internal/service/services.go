package service

import (
	"github.com/ohp/ohp-config/internal/logger"
	"github.com/ohp/ohp-config/internal/utils"
)

// Environment carries the inputs the assembler would otherwise read from
// the process environment.
type Environment struct {
	// DockerDatabase selects the Docker-network MongoDB host instead of
	// the loopback address.
	DockerDatabase bool
}

type Services struct {
	ConfigurationService ConfigurationService
}

func NewServices(env Environment, hostAddress string, tokens utils.TokenGenerator, logger *logger.Logger) *Services {
	return &Services{
		ConfigurationService: NewConfigurationService(env, hostAddress, tokens, logger),
	}
}
